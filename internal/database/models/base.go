package models

// Base model with an auto-incrementing primary key. The assigned ID doubles
// as the insertion-order tie-breaker wherever rows share a timestamp.
type Base struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`
}
