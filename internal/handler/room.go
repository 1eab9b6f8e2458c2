package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"chatto/internal/store"
)

// CreateRoom handles POST /createRoom
func (h *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	username := requestUser(r)
	log.Printf("[POST /createRoom] Request received from %s (user %q)", r.RemoteAddr, username)

	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, envelope{"success": false, "message": "Invalid request body."})
		return
	}
	roomName := r.PostFormValue("roomName")
	if strings.TrimSpace(roomName) == "" {
		writeJSON(w, http.StatusBadRequest, envelope{"success": false, "message": "Room name cannot be empty."})
		return
	}

	roomID, err := h.Store.Rooms.CreateRoom(roomName)
	if err != nil {
		status, msg := createRoomErrorResponse(err)
		log.Printf("[POST /createRoom] Rejected %q: %v", roomName, err)
		writeJSON(w, status, envelope{"success": false, "message": msg})
		return
	}

	log.Printf("[POST /createRoom] User %q created room %q", username, roomID)
	writeJSON(w, http.StatusCreated, envelope{
		"success": true,
		"message": fmt.Sprintf("Room '%s' created.", roomID),
		"roomId":  roomID,
	})
}

func createRoomErrorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, store.ErrRoomExists):
		return http.StatusConflict, "Room already exists."
	case errors.Is(err, store.ErrForbiddenRoomName):
		return http.StatusBadRequest, "Room name contains forbidden words."
	case errors.Is(err, store.ErrInvalidRoomName):
		return http.StatusBadRequest, "Room name: 3-15 valid chars (letters, numbers, hyphens)."
	default:
		return http.StatusInternalServerError, "Failed to create room."
	}
}

// GetRooms handles GET /getRooms
func (h *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	roomIDs := h.Store.Rooms.RoomIDs()
	log.Printf("[GET /getRooms] Returned %d rooms", len(roomIDs))
	writeJSON(w, http.StatusOK, roomIDs)
}
