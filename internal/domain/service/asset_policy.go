package service

import (
	"fmt"
	"mime"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"gamevault/internal/domain/entity"
	"gamevault/pkg/errors"
)

// MaxAssetBytes is the upload ceiling shared by every asset kind (5 MiB).
const MaxAssetBytes int64 = 5 * 1024 * 1024

// AssetPolicy decides whether an uploaded file may be stored as a given kind.
type AssetPolicy struct {
	Kind         entity.AssetKind
	AllowedTypes []string
	MaxBytes     int64
	// VerifySignature additionally requires the sniffed type of the bytes
	// to be in AllowedTypes.
	VerifySignature bool
}

func SpritePolicy() AssetPolicy {
	return AssetPolicy{
		Kind:         entity.AssetKindSprite,
		AllowedTypes: []string{"image/png", "image/jpeg"},
		MaxBytes:     MaxAssetBytes,
	}
}

func AudioPolicy() AssetPolicy {
	return AssetPolicy{
		Kind:         entity.AssetKindAudio,
		AllowedTypes: []string{"audio/mpeg", "audio/wav"},
		MaxBytes:     MaxAssetBytes,
	}
}

// PolicyFor returns the policy of kind with signature checks switched on or off.
func PolicyFor(kind entity.AssetKind, verifySignature bool) (AssetPolicy, error) {
	var policy AssetPolicy
	switch kind {
	case entity.AssetKindSprite:
		policy = SpritePolicy()
	case entity.AssetKindAudio:
		policy = AudioPolicy()
	default:
		return AssetPolicy{}, errors.Internal(fmt.Sprintf("unknown asset kind %q", kind), nil)
	}
	policy.VerifySignature = verifySignature
	return policy, nil
}

// AllowsType reports whether the declared content type is on the allow list.
func (p AssetPolicy) AllowsType(contentType string) bool {
	normalized := NormalizeContentType(contentType)
	for _, allowed := range p.AllowedTypes {
		if normalized == allowed {
			return true
		}
	}
	return false
}

// CheckDeclared validates what the client claims before the body is read.
func (p AssetPolicy) CheckDeclared(contentType string, size int64) error {
	if !p.AllowsType(contentType) {
		return errors.BadRequest(fmt.Sprintf("Invalid file type. Only %s allowed.", strings.Join(p.AllowedTypes, ", ")), nil)
	}
	if size > p.MaxBytes {
		return p.TooLarge()
	}
	return nil
}

// Check validates the full upload: declared type, byte length and, when
// enabled, the sniffed signature of the content.
func (p AssetPolicy) Check(contentType string, content []byte) error {
	if err := p.CheckDeclared(contentType, int64(len(content))); err != nil {
		return err
	}

	if p.VerifySignature {
		detected := mimetype.Detect(content)
		matched := false
		for _, allowed := range p.AllowedTypes {
			if detected.Is(allowed) {
				matched = true
				break
			}
		}
		if !matched {
			return errors.BadRequest(fmt.Sprintf("File content does not match an allowed type (detected %s)", detected.String()), nil)
		}
	}

	return nil
}

func (p AssetPolicy) TooLarge() error {
	return errors.BadRequest(fmt.Sprintf("File size exceeds maximum allowed (%dMB)", p.MaxBytes/(1024*1024)), nil)
}

// NormalizeContentType lower-cases a media type and strips its parameters.
func NormalizeContentType(contentType string) string {
	contentType = strings.TrimSpace(contentType)
	if contentType == "" {
		return ""
	}
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		return mediaType
	}
	if idx := strings.Index(contentType, ";"); idx >= 0 {
		contentType = contentType[:idx]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}
