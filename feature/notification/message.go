package notification

import (
	"encoding/json"
	"fmt"
)

// Media subjects that announce an asset worth reconciling.
const (
	SubjectMediaUploaded    = "asset_bank.media.uploaded"
	SubjectMediaUpload      = "asset_bank.media.upload"
	SubjectMediaCreate      = "asset_bank.media.create"
	SubjectMediaPreArchived = "asset_bank.media.pre_archived"
)

// mediaSubjects is the allow-list of subjects carrying a MediaPayload.
var mediaSubjects = map[string]struct{}{
	SubjectMediaUploaded:    {},
	SubjectMediaUpload:      {},
	SubjectMediaCreate:      {},
	SubjectMediaPreArchived: {},
}

// MediaPayload is the schema of media subjects.
type MediaPayload struct {
	MediaID string `json:"media_id"`
}

// Notification is a decoded push message: the subject tag plus the payload
// of its schema. Unknown subjects decode with a nil payload and are
// acknowledged without action.
type Notification struct {
	Subject string
	// Media is set for media subjects only.
	Media *MediaPayload
}

// envelope is the raw wire shape: subject plus an opaque message body.
type envelope struct {
	Subject string          `json:"subject"`
	Message json.RawMessage `json:"message"`
}

// Parse decodes a message body into a Notification.
func Parse(body []byte) (*Notification, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("cannot parse notification body: %w", err)
	}
	if env.Subject == "" {
		return nil, fmt.Errorf("notification has no subject")
	}

	n := &Notification{Subject: env.Subject}

	if _, ok := mediaSubjects[env.Subject]; ok {
		var payload MediaPayload
		if err := json.Unmarshal(env.Message, &payload); err != nil {
			return nil, fmt.Errorf("cannot parse %s payload: %w", env.Subject, err)
		}
		n.Media = &payload
	}

	return n, nil
}
