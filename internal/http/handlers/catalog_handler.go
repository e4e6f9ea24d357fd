// Product catalogue HTTP handler.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListProducts godoc
// @ID          listProducts
// @Summary     List the product catalogue
// @Description Returns the catalogue as a plain array; an optional category query filters it ("all" or empty returns everything).
// @Tags        Catalog
// @Produce     json
//
// @Param       category  query  string  false  "Category filter"  example(rings)
//
// @Success     200  {array}   domain.Product
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /products [get]
func (h *Handlers) ListProducts(c *gin.Context) {
	products, err := h.catSvc.Products(c.Request.Context(), c.DefaultQuery("category", "all"))
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, products)
}
