package domain

// KeyPrefix is the global key prefix for all tutordex keys in the document store.
// Set on startup from storage.key_prefix.
var KeyPrefix = "tutordex:"

// MaxRating is the upper bound of the rating scale. Ratings and thresholds live in [0, MaxRating].
const MaxRating = 5.0
