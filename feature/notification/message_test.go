package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_MediaSubjects(t *testing.T) {
	subjects := []string{
		SubjectMediaUploaded,
		SubjectMediaUpload,
		SubjectMediaCreate,
		SubjectMediaPreArchived,
	}

	for _, subject := range subjects {
		t.Run(subject, func(t *testing.T) {
			body := `{"subject": "` + subject + `", "message": {"media_id": "73843ABB"}}`

			n, err := Parse([]byte(body))
			require.NoError(t, err)

			assert.Equal(t, subject, n.Subject)
			require.NotNil(t, n.Media)
			assert.Equal(t, "73843ABB", n.Media.MediaID)
		})
	}
}

func TestParse_UnknownSubjectHasNoPayload(t *testing.T) {
	body := `{"subject": "asset_bank.collection.created", "message": {"collection_id": "1"}}`

	n, err := Parse([]byte(body))
	require.NoError(t, err)

	assert.Equal(t, "asset_bank.collection.created", n.Subject)
	assert.Nil(t, n.Media)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "Not JSON", body: `{"subject": "asset`},
		{name: "Missing Subject", body: `{"message": {"media_id": "73843ABB"}}`},
		{name: "Malformed Media Payload", body: `{"subject": "asset_bank.media.uploaded", "message": "not an object"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.body))
			assert.Error(t, err)
		})
	}
}
