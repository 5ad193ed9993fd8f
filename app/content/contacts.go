package content

// Contacts returns the static contact channel list. These are not sourced
// externally; the write path for submissions lives in the API layer.
func Contacts() []ContactChannel {
	return []ContactChannel{
		{
			ID:    "email",
			Name:  "Email",
			Value: "hello@codejedi.ai",
			Icon:  "mail",
			Href:  "mailto:hello@codejedi.ai",
			Color: "#EA4335",
		},
		{
			ID:    "github",
			Name:  "GitHub",
			Value: "codejedi-ai",
			Icon:  "github",
			Href:  "https://github.com/codejedi-ai",
			Color: "#181717",
		},
		{
			ID:    "linkedin",
			Name:  "LinkedIn",
			Value: "codejedi-ai",
			Icon:  "linkedin",
			Href:  "https://www.linkedin.com/in/codejedi-ai",
			Color: "#0A66C2",
		},
		{
			ID:    "twitter",
			Name:  "Twitter",
			Value: "@codejedi_ai",
			Icon:  "twitter",
			Href:  "https://twitter.com/codejedi_ai",
			Color: "#1DA1F2",
		},
	}
}
