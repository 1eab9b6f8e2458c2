package store

import (
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"chatto/internal/model"
	"chatto/internal/moderation"
)

// GeneralRoom is created on startup and always present.
const GeneralRoom = "general"

var (
	whitespaceRuns  = regexp.MustCompile(`\s+`)
	invalidRoomChar = regexp.MustCompile(`[^a-z0-9-]`)
)

// messageLog is one room's ordered message sequence. Every log owns its own
// mutex, so traffic in one room never contends with another room's.
type messageLog struct {
	mu   sync.Mutex
	msgs []model.Message
}

func (l *messageLog) append(msg model.Message) {
	l.mu.Lock()
	l.msgs = append(l.msgs, msg)
	l.mu.Unlock()
}

// snapshot returns a copy of the log that a concurrent append or delete
// cannot tear.
func (l *messageLog) snapshot() []model.Message {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]model.Message, len(l.msgs))
	copy(out, l.msgs)
	return out
}

// remove deletes the message with the given id if it belongs to sender,
// reporting whether anything was removed.
func (l *messageLog) remove(id, sender string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, msg := range l.msgs {
		if msg.ID == id && msg.Sender == sender {
			l.msgs = append(l.msgs[:i], l.msgs[i+1:]...)
			return true
		}
	}
	return false
}

// RoomRegistry owns every room's message log. The backing sync.Map's
// LoadOrStore is the single insert-if-absent primitive shared by CreateRoom
// and by posting into a room that does not exist yet, so a creation race
// can never produce two logs for the same id.
type RoomRegistry struct {
	rooms     sync.Map // room id -> *messageLog
	filter    *moderation.Filter
	forbidden map[string]bool
}

// NewRoomRegistry creates a registry with the "general" room pre-created.
// Room names normalizing to an entry of forbiddenNames are rejected.
func NewRoomRegistry(filter *moderation.Filter, forbiddenNames []string) *RoomRegistry {
	r := &RoomRegistry{
		filter:    filter,
		forbidden: make(map[string]bool, len(forbiddenNames)),
	}
	for _, name := range forbiddenNames {
		r.forbidden[strings.ToLower(name)] = true
	}
	r.ensure(GeneralRoom)
	return r
}

// ensure returns the room's log, creating an empty one atomically if
// absent. The second result reports whether the room already existed.
func (r *RoomRegistry) ensure(roomID string) (*messageLog, bool) {
	v, loaded := r.rooms.LoadOrStore(roomID, &messageLog{})
	return v.(*messageLog), loaded
}

func normalizeRoomName(raw string) string {
	id := strings.ToLower(strings.TrimSpace(raw))
	id = whitespaceRuns.ReplaceAllString(id, "-")
	return invalidRoomChar.ReplaceAllString(id, "")
}

// CreateRoom normalizes the requested name (lowercase, whitespace runs to
// hyphens, anything outside [a-z0-9-] stripped) and creates an empty room
// under the normalized id.
func (r *RoomRegistry) CreateRoom(rawName string) (string, error) {
	roomID := normalizeRoomName(rawName)
	if len(roomID) < 3 || len(roomID) > 15 {
		return "", ErrInvalidRoomName
	}
	if r.forbidden[roomID] {
		return "", ErrForbiddenRoomName
	}
	if _, existed := r.ensure(roomID); existed {
		return "", ErrRoomExists
	}
	return roomID, nil
}

// Post moderates the text and appends a new message to the room. Posting
// into an unknown room silently creates it; that permissiveness is part of
// the contract. The second result reports whether moderation changed the
// text.
func (r *RoomRegistry) Post(roomID, sender, text string) (model.Message, bool) {
	moderated := r.filter.Moderate(text)
	msg := model.Message{
		ID:        uuid.NewString(),
		Sender:    sender,
		Text:      moderated,
		Timestamp: time.Now().UTC(),
		Room:      roomID,
	}
	entry, _ := r.ensure(roomID)
	entry.append(msg)
	return msg, moderated != text
}

// Messages returns a point-in-time copy of the room's log in post order.
// Unknown rooms yield an empty slice and are not created.
func (r *RoomRegistry) Messages(roomID string) []model.Message {
	v, ok := r.rooms.Load(roomID)
	if !ok {
		return []model.Message{}
	}
	return v.(*messageLog).snapshot()
}

// Delete removes the message only when it both exists and belongs to the
// requester. The two failure cases are indistinguishable on purpose: a
// caller cannot probe whether someone else's message id exists.
func (r *RoomRegistry) Delete(roomID, messageID, requester string) (bool, error) {
	v, ok := r.rooms.Load(roomID)
	if !ok {
		return false, ErrRoomNotFound
	}
	return v.(*messageLog).remove(messageID, requester), nil
}

// RoomIDs lists every known room id in ascending lexicographic order.
func (r *RoomRegistry) RoomIDs() []string {
	var ids []string
	r.rooms.Range(func(key, _ any) bool {
		ids = append(ids, key.(string))
		return true
	})
	sort.Strings(ids)
	return ids
}
