package entity

// AssetKind names a class of uploaded binary asset. Each kind lives in its
// own collection and carries a fixed description.
type AssetKind string

const (
	AssetKindSprite AssetKind = "sprite"
	AssetKindAudio  AssetKind = "audio"
)

const (
	SpriteCollection = "Sprites"
	AudioCollection  = "Audio"
	ScoreCollection  = "Scores"
)

const (
	SpriteDescription = "Sprite uploaded via Base64"
	AudioDescription  = "Audio uploaded via Base64"
)

// Collection returns the document store collection for the kind.
func (k AssetKind) Collection() string {
	switch k {
	case AssetKindSprite:
		return SpriteCollection
	case AssetKindAudio:
		return AudioCollection
	}
	return ""
}

func (k AssetKind) Description() string {
	switch k {
	case AssetKindSprite:
		return SpriteDescription
	case AssetKindAudio:
		return AudioDescription
	}
	return ""
}

func (k AssetKind) Valid() bool {
	return k.Collection() != ""
}

// Asset is a stored sprite or audio clip. Content holds the original bytes
// in standard base64 and is never returned by list endpoints.
type Asset struct {
	ID          string `json:"id" bson:"-" firestore:"-"`
	Filename    string `json:"filename" bson:"filename" firestore:"filename"`
	Content     string `json:"content" bson:"content" firestore:"content"`
	Description string `json:"description" bson:"description" firestore:"description"`
}
