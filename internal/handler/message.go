package handler

import (
	"errors"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"chatto/internal/store"
)

// PostMessage handles POST /postMessage
func (h *Handler) PostMessage(w http.ResponseWriter, r *http.Request) {
	username := requestUser(r)
	log.Printf("[POST /postMessage] Request received from %s (user %q)", r.RemoteAddr, username)

	// リクエストボディサイズを1MBに制限
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{"success": false, "message": "Invalid request body."})
		return
	}
	text := r.PostFormValue("message")
	roomID := r.PostFormValue("room")
	if strings.TrimSpace(text) == "" || strings.TrimSpace(roomID) == "" {
		writeJSON(w, http.StatusBadRequest, envelope{"success": false, "message": "Message or room ID missing."})
		return
	}

	msg, wasCensored := h.Store.Rooms.Post(roomID, username, text)
	if wasCensored {
		log.Printf("[POST /postMessage] Message %s from %q censored", msg.ID, username)
	}
	log.Printf("[POST /postMessage] Message %s added to room %q", msg.ID, roomID)

	resp := envelope{"success": true, "message": "Message posted"}
	if wasCensored {
		resp["censored"] = true
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetMessages handles GET /getMessages
func (h *Handler) GetMessages(w http.ResponseWriter, r *http.Request) {
	roomID := r.URL.Query().Get("room")
	if roomID == "" {
		roomID = store.GeneralRoom
	}

	msgs := h.Store.Rooms.Messages(roomID)
	log.Printf("[GET /getMessages] Returned %d messages for room %q", len(msgs), roomID)
	writeJSON(w, http.StatusOK, msgs)
}

// DeleteMessage handles DELETE /deleteMessage
//
// The browser client sends the parameters form-encoded in the DELETE body,
// which ParseForm ignores for this method, so the body is parsed by hand.
func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	username := requestUser(r)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{"success": false, "message": "Invalid request body."})
		return
	}
	form, err := url.ParseQuery(string(body))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{"success": false, "message": "Invalid request body."})
		return
	}

	roomID := form.Get("roomId")
	messageID := form.Get("messageId")
	if strings.TrimSpace(roomID) == "" || strings.TrimSpace(messageID) == "" {
		writeJSON(w, http.StatusBadRequest, envelope{"success": false, "message": "Room ID and Message ID are required."})
		return
	}
	log.Printf("[DELETE /deleteMessage] User %q deleting message %q in room %q", username, messageID, roomID)

	removed, err := h.Store.Rooms.Delete(roomID, messageID, username)
	if err != nil {
		if errors.Is(err, store.ErrRoomNotFound) {
			writeJSON(w, http.StatusNotFound, envelope{"success": false, "message": "Room not found."})
			return
		}
		writeJSON(w, http.StatusInternalServerError, envelope{"success": false, "message": "Failed to delete message."})
		return
	}
	if !removed {
		log.Printf("[DELETE /deleteMessage] Message %q not found or not owned by %q", messageID, username)
		writeJSON(w, http.StatusNotFound, envelope{"success": false, "message": "Message not found or you are not authorized to delete it."})
		return
	}

	log.Printf("[DELETE /deleteMessage] Message %q deleted by %q", messageID, username)
	writeJSON(w, http.StatusOK, envelope{"success": true, "message": "Message deleted."})
}
