package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/starfolio/internal/contact"
)

func contactData(form contact.FormData, errs contact.FieldErrors, status contact.Status, toast string) gin.H {
	if errs == nil {
		errs = contact.FieldErrors{}
	}
	return gin.H{
		"title":    "Contact",
		"form":     form,
		"errors":   errs,
		"subjects": contact.Subjects,
		"status":   status,
		"toast":    toast,
	}
}

func (s *Server) handleContact(c *gin.Context) {
	s.render(c, http.StatusOK, "contact.html", contactData(contact.FormData{}, nil, contact.StatusIdle, ""))
}

func (s *Server) handleContactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact-form.html", contactData(contact.FormData{}, nil, contact.StatusIdle, ""))
}

// handleContactSubmit answers htmx posts with a fragment and plain form posts
// with the full page
func (s *Server) handleContactSubmit(c *gin.Context) {
	var form contact.FormData
	if err := c.ShouldBind(&form); err != nil {
		errs, ok := contact.FromError(err)
		if !ok {
			s.logger.Warn("malformed contact submission", "error", err)
			errs = contact.Validate(form)
		}
		s.contactReply(c, http.StatusUnprocessableEntity, form, errs, contact.Result{Status: contact.StatusInvalid})
		return
	}

	result := s.opts.Contact.Submit(c.Request.Context(), form)
	switch result.Status {
	case contact.StatusInvalid:
		s.contactReply(c, http.StatusUnprocessableEntity, form, result.Errors, result)
	case contact.StatusError:
		// keep what the visitor typed so they can retry
		s.contactReply(c, http.StatusOK, form, nil, result)
	default:
		s.contactReply(c, http.StatusOK, contact.FormData{}, nil, result)
	}
}

func (s *Server) contactReply(c *gin.Context, status int, form contact.FormData, errs contact.FieldErrors, result contact.Result) {
	data := contactData(form, errs, result.Status, result.Toast)

	if c.GetHeader("HX-Request") != "true" {
		s.render(c, status, "contact.html", data)
		return
	}

	// htmx discards 4xx bodies, so field errors go out as a swappable 200
	if status == http.StatusUnprocessableEntity {
		status = http.StatusOK
	}

	switch result.Status {
	case contact.StatusSuccess:
		c.HTML(status, "contact-success.html", data)
	case contact.StatusError:
		c.HTML(status, "contact-error.html", data)
	default:
		c.HTML(status, "contact-form.html", data)
	}
}
