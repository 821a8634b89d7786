// Package uploads signs browser-direct Cloudinary uploads so the API secret
// never reaches a front-end.
package uploads

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrNotConfigured = errors.New("uploads: cloudinary is not configured")

type Service struct {
	cloudName string
	apiKey    string
	apiSecret string

	now   func() time.Time
	newID func() string
}

func NewService(cloudName, apiKey, apiSecret string) *Service {
	return &Service{
		cloudName: cloudName,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

type Signature struct {
	CloudName string `json:"cloudName"`
	APIKey    string `json:"apiKey"`
	PublicID  string `json:"publicId"`
	Folder    string `json:"folder,omitempty"`
	Timestamp int64  `json:"timestamp"`
	Signature string `json:"signature"`
	UploadURL string `json:"uploadUrl"`
}

// Sign produces the signature Cloudinary expects: SHA-1 over the sorted
// signed params joined with & plus the API secret.
func (s *Service) Sign(folder string) (*Signature, error) {
	if s.cloudName == "" || s.apiKey == "" || s.apiSecret == "" {
		return nil, ErrNotConfigured
	}

	ts := s.now().Unix()
	params := map[string]string{
		"public_id": s.newID(),
		"timestamp": fmt.Sprintf("%d", ts),
	}
	if folder != "" {
		params["folder"] = folder
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "=" + params[k]
	}
	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + s.apiSecret))

	return &Signature{
		CloudName: s.cloudName,
		APIKey:    s.apiKey,
		PublicID:  params["public_id"],
		Folder:    folder,
		Timestamp: ts,
		Signature: hex.EncodeToString(sum[:]),
		UploadURL: "https://api.cloudinary.com/v1_1/" + s.cloudName + "/auto/upload",
	}, nil
}
