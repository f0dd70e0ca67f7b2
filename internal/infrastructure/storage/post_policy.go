package storage

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"rentersrights/internal/domain/entity"
)

// PolicySigner issues S3 browser-POST upload authorizations: a base64
// policy document plus an HMAC-SHA1 signature over those exact bytes.
// Changing any policy condition (key, content type, expiry) invalidates
// the signature.
type PolicySigner struct {
	uploadURL   string
	bucket      string
	accessKeyID string
	secretKey   string
	contentType string
	acl         string
	minBytes    int64
	maxBytes    int64
	expiry      time.Duration
}

type PolicySignerConfig struct {
	UploadURL   string
	Bucket      string
	AccessKeyID string
	SecretKey   string
	ContentType string
	MinBytes    int64
	MaxBytes    int64
	Expiry      time.Duration
}

type policyDocument struct {
	Expiration string        `json:"expiration"`
	Conditions []interface{} `json:"conditions"`
}

func NewPolicySigner(cfg PolicySignerConfig) *PolicySigner {
	return &PolicySigner{
		uploadURL:   cfg.UploadURL,
		bucket:      cfg.Bucket,
		accessKeyID: cfg.AccessKeyID,
		secretKey:   cfg.SecretKey,
		contentType: cfg.ContentType,
		acl:         "private",
		minBytes:    cfg.MinBytes,
		maxBytes:    cfg.MaxBytes,
		expiry:      cfg.Expiry,
	}
}

// Sign builds the policy for one exact object key and signs it. The key is
// the only caller-controlled condition; everything else comes from
// configuration.
func (s *PolicySigner) Sign(objectKey string, now time.Time) (entity.UploadAuthorization, error) {
	doc := policyDocument{
		Expiration: now.UTC().Add(s.expiry).Format("2006-01-02T15:04:05Z"),
		Conditions: []interface{}{
			map[string]string{"acl": s.acl},
			map[string]string{"Content-Type": s.contentType},
			[]interface{}{"content-length-range", s.minBytes, s.maxBytes},
			map[string]string{"bucket": s.bucket},
			map[string]string{"key": objectKey},
		},
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return entity.UploadAuthorization{}, fmt.Errorf("failed to encode upload policy: %w", err)
	}

	policy := base64.StdEncoding.EncodeToString(raw)

	mac := hmac.New(sha1.New, []byte(s.secretKey))
	mac.Write([]byte(policy))
	signature := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	return entity.UploadAuthorization{
		URL: s.uploadURL,
		Fields: map[string]string{
			"acl":            s.acl,
			"Content-Type":   s.contentType,
			"key":            objectKey,
			"AWSAccessKeyId": s.accessKeyID,
			"policy":         policy,
			"signature":      signature,
		},
	}, nil
}
