package faq

// Seed returns the built-in FAQ catalogue used to initialize an empty store.
// The slice is freshly allocated on each call so callers may append or
// reorder without affecting later seeds.
func Seed() []Entry {
	return []Entry{
		{Category: "General Questions", Question: "Do you ship internationally?", Answer: "Yes, we ship worldwide. Shipping charges and delivery times vary by country and are shown at checkout."},
		{Category: "General Questions", Question: "What are the delivery charges?", Answer: "Delivery is free within India for orders above ₹1,000. For international orders, charges depend on location and weight."},
		{Category: "General Questions", Question: "How many days does shipping take within India?", Answer: "Standard delivery takes 4–7 business days. Express delivery (extra charge) is available in select cities within 2–3 days."},
		{Category: "General Questions", Question: "Do you provide gift wrapping?", Answer: "Yes, we offer free gift wrapping. You can also add a personalized note at checkout."},
		{Category: "General Questions", Question: "Can I customize my jewellery?", Answer: "Yes, we accept customization requests for select designs. Please contact our support team with your requirements."},

		{Category: "Orders & Returns", Question: "What is your return/refund policy?", Answer: "You can return products within 7 days of delivery if unused and in original packaging. Refunds are processed within 5–7 business days after quality checks."},
		{Category: "Orders & Returns", Question: "How do I track my order?", Answer: "Once your order ships, you’ll receive a tracking link by email and SMS. You can also track it from the “My Orders” section on our website."},
		{Category: "Orders & Returns", Question: "How do I cancel or modify my order after placing it?", Answer: "Orders can be modified or canceled within 12 hours of placing them. Please contact customer support immediately for assistance."},
		{Category: "Orders & Returns", Question: "Do you offer exchanges?", Answer: "Yes, exchanges are accepted within 7 days for items of equal or higher value. The product must be unused and returned in original packaging."},
		{Category: "Orders & Returns", Question: "What happens if my order arrives damaged?", Answer: "We’re sorry for the inconvenience. Please share photos of the damaged product with our support team within 24 hours, and we’ll arrange a replacement or refund."},

		{Category: "Product Care", Question: "How do I clean and maintain jewellery?", Answer: "Use a soft cloth to wipe after each use. Keep away from perfumes, lotions, and moisture. Store in a dry box or pouch."},
		{Category: "Product Care", Question: "Are your products waterproof or sweat-resistant?", Answer: "Our jewellery is not waterproof. Avoid wearing during showers, swimming, or workouts to maintain shine."},
		{Category: "Product Care", Question: "What materials do you use in your jewellery?", Answer: "We use 92.5 sterling silver, gold plating, semi-precious stones, and hypoallergenic alloys depending on the design."},
		{Category: "Product Care", Question: "Is your jewellery hypoallergenic?", Answer: "Yes, our products are nickel-free and safe for sensitive skin."},
		{Category: "Product Care", Question: "Do you provide certificates of authenticity?", Answer: "Yes, we provide certificates for silver and gold-plated jewellery confirming purity and authenticity."},

		{Category: "Store & Stock", Question: "Do you have moon-themed jewellery in stock?", Answer: "Yes, we have a special 'Lunara Moon Collection' with rings, pendants, and earrings. Check the Moon Collection section on our website."},
		{Category: "Store & Stock", Question: "How often do you release new collections?", Answer: "We release new collections every season, with limited-edition drops during festivals."},
		{Category: "Store & Stock", Question: "Can I pre-order an item that is out of stock?", Answer: "Yes, pre-orders are available for select designs. Estimated delivery will be shown at checkout."},
		{Category: "Store & Stock", Question: "Do you have a physical store?", Answer: "Currently, we are online-only. However, we plan to open flagship stores soon. Stay tuned!"},
		{Category: "Store & Stock", Question: "Do you offer bulk/wholesale orders?", Answer: "Yes, bulk orders are accepted. Please contact us for pricing and customization options."},

		{Category: "Payments & Support", Question: "What payment methods do you accept?", Answer: "We accept credit/debit cards, UPI, net banking, PayPal, and Cash on Delivery (India only)."},
		{Category: "Payments & Support", Question: "Is my payment information secure?", Answer: "Yes, all transactions are encrypted with SSL and processed securely through trusted payment gateways."},
		{Category: "Payments & Support", Question: "Do you offer EMI or installment options?", Answer: "Yes, EMI is available for orders above ₹5,000 through select banks at checkout."},
		{Category: "Payments & Support", Question: "How can I contact customer support?", Answer: "You can reach us via email at support@lunarajewellery.com or use the chatbot to log a support ticket."},
		{Category: "Payments & Support", Question: "What are your customer service hours?", Answer: "Our support team is available Monday to Saturday, 10:00 AM – 7:00 PM IST."},
	}
}
