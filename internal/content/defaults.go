package content

import "encoding/json"

// DefaultDocument is the template content a fresh (or reset) site starts
// with. Every top-level section the API will ever serve must be present
// here: replaceSection refuses to create sections that do not exist.
func DefaultDocument() Document {
	return Document{
		"about": json.RawMessage(`{
  "tagline": "Your tagline here",
  "headline": "Welcome",
  "intro": "A short introduction shown at the top of the page.",
  "paragraphs": [
    "Replace this paragraph with your own story.",
    "Add as many paragraphs as you like; they render in order."
  ],
  "meta": {
    "location": "Portland, OR",
    "languages": "English"
  },
  "tags": ["friendly", "professional", "discreet"]
}`),
		"services": json.RawMessage(`[
  {
    "id": "standard",
    "name": "Standard Session",
    "duration": "1 hour",
    "rate": "$100",
    "description": "Describe what this service includes."
  },
  {
    "id": "extended",
    "name": "Extended Session",
    "duration": "2 hours",
    "rate": "$180",
    "description": "Describe what this service includes."
  }
]`),
		"availability": json.RawMessage(`{
  "weekly": [
    {"label": "Monday - Friday", "time": "10am - 8pm", "status": "open"},
    {"label": "Saturday", "time": "12pm - 6pm", "status": "limited"},
    {"label": "Sunday", "time": "", "status": "unavailable"}
  ],
  "note": "Same-day bookings are sometimes possible.",
  "instructions": "Please reach out at least 24 hours in advance."
}`),
		"photos": json.RawMessage(`[]`),
		"contact": json.RawMessage(`{
  "email": "hello@example.com",
  "guidance": "Email is the best way to reach me. Include your preferred date and time."
}`),
	}
}
