package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/codejedi-ai/portfolio-api/app/notion"
)

// ContactRequest is the write-path input. Unlike the read path, validation
// failures surface to the caller: they need to know the submission did not
// land.
type ContactRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Message   string `json:"message" binding:"required"`
	Phone     string `json:"phone"`
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
	Discord   string `json:"discord"`
	LinkedIn  string `json:"linkedin"`
	Github    string `json:"github"`
}

func (h *Handler) SubmitContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Missing or invalid required fields: name, email and message are required",
			"details": err.Error(),
		})
		return
	}

	if h.contactsDatabaseID == "" {
		slog.Error("Contact submission rejected: contacts database not configured")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Contact submissions are not configured"})
		return
	}

	page, err := h.pageCreator.CreatePage(c.Request.Context(), h.contactsDatabaseID, contactProperties(req))
	if err != nil {
		slog.Error("Contact submission failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "Failed to store contact submission",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Thanks for reaching out! I will get back to you soon.",
		"recordId": page.ID,
	})
}

func contactProperties(req ContactRequest) map[string]notion.Property {
	properties := map[string]notion.Property{
		"Name": {
			Type:  "title",
			Title: []notion.RichText{{Text: &notion.TextContent{Content: req.Name}}},
		},
		"Email": {
			Type:  "email",
			Email: &req.Email,
		},
		"Message": {
			Type:     "rich_text",
			RichText: []notion.RichText{{Text: &notion.TextContent{Content: req.Message}}},
		},
	}

	setText := func(name, value string) {
		if value == "" {
			return
		}
		properties[name] = notion.Property{
			Type:     "rich_text",
			RichText: []notion.RichText{{Text: &notion.TextContent{Content: value}}},
		}
	}

	if req.Phone != "" {
		phone := req.Phone
		properties["Phone"] = notion.Property{Type: "phone_number", PhoneNumber: &phone}
	}

	setText("Instagram", normalizeHandle(req.Instagram))
	setText("Twitter", normalizeHandle(req.Twitter))
	setText("Discord", normalizeHandle(req.Discord))
	setText("LinkedIn", normalizeLink(req.LinkedIn))
	setText("Github", normalizeLink(req.Github))

	return properties
}

// normalizeHandle prefixes social handles with "@" when missing.
func normalizeHandle(handle string) string {
	handle = strings.TrimSpace(handle)
	if handle == "" || strings.HasPrefix(handle, "@") {
		return handle
	}
	return "@" + handle
}

// normalizeLink prefixes bare domains with "https://".
func normalizeLink(link string) string {
	link = strings.TrimSpace(link)
	if link == "" || strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://") {
		return link
	}
	return "https://" + link
}
