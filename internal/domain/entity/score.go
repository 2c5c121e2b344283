package entity

// ScoreEntry is one score submission. Entries are never ranked or merged.
type ScoreEntry struct {
	ID         string `json:"id" bson:"-" firestore:"-"`
	PlayerName string `json:"player_name" bson:"player_name" firestore:"player_name"`
	Score      int64  `json:"score" bson:"score" firestore:"score"`
}
