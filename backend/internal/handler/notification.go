package handler

import (
	"net/http"

	"github.com/mateoroldos/personal-blog/shared/api"
	"github.com/mateoroldos/personal-blog/shared/domain"
	"github.com/mateoroldos/personal-blog/shared/logger"
	"github.com/mateoroldos/personal-blog/shared/utils"
	"github.com/mateoroldos/personal-blog/shared/validation"
)

const (
	contactSucceeded = "Success!"
	contactInvalid   = "Invalid input"
	contactFailed    = "Failed to send email"

	subscribeSucceeded = "Subscribed successfully"
	subscribeInvalid   = "Invalid email"
	subscribeUpstream  = "Failed to subscribe, check your email address"
	subscribeUnknown   = "Upsss, an unknown error occurred"
)

// Contact forwards the contact form to the site owner by email.
func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	if err := validation.ParseForm(w, r, h.cfg.Public.MaxFormSize); err != nil {
		logger.FromContext(r.Context()).Info("unreadable contact form", "error", err)
		utils.WriteJSON(w, http.StatusBadRequest, api.MessageResponse{Message: contactInvalid})
		return
	}

	res := h.gateway.Contact(r.Context(), r.PostFormValue("email"), r.PostFormValue("message"))

	status, message := contactResponse(res.Outcome)
	utils.WriteJSON(w, status, api.MessageResponse{Message: message})
}

// Subscribe adds the submitted address to the newsletter.
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	if err := validation.ParseForm(w, r, h.cfg.Public.MaxFormSize); err != nil {
		logger.FromContext(r.Context()).Info("unreadable subscribe form", "error", err)
		utils.WriteJSON(w, http.StatusBadRequest, api.StatusResponse{Success: false, Message: subscribeInvalid})
		return
	}

	res := h.gateway.Subscribe(r.Context(), r.PostFormValue("email"))

	status, message := subscribeResponse(res.Outcome)
	utils.WriteJSON(w, status, api.StatusResponse{Success: res.Outcome == domain.Accepted, Message: message})
}

func contactResponse(o domain.Outcome) (int, string) {
	switch o {
	case domain.Accepted:
		return http.StatusOK, contactSucceeded
	case domain.Rejected:
		return http.StatusBadRequest, contactInvalid
	default:
		return http.StatusInternalServerError, contactFailed
	}
}

func subscribeResponse(o domain.Outcome) (int, string) {
	switch o {
	case domain.Accepted:
		return http.StatusOK, subscribeSucceeded
	case domain.Rejected:
		return http.StatusBadRequest, subscribeInvalid
	case domain.UpstreamFailure:
		return http.StatusBadGateway, subscribeUpstream
	default:
		return http.StatusInternalServerError, subscribeUnknown
	}
}
