// Package tutordex provides a Go client for the tutordex tutor directory
// backed by Redis or Valkey with the JSON module.
//
// The directory lists verified tutors ordered by rating and narrows them by a free-text
// term (substring over names and subjects), required subjects and a minimum rating.
// The explore catalog matches subject titles and description words by prefix.
//
// # Connected client
//
//	client, _ := tutordex.New(ctx, tutordex.WithRedis("localhost:6379", ""))
//	defer client.Close()
//	tutors, _ := client.Tutors(ctx, tutordex.Query{Subjects: []string{"Mathematics"}, MinRating: tutordex.Rating(4)})
//	subjects := client.Subjects("bio")
//
// # Filtering without a store
//
//	results, _ := tutordex.FilterTutors(tutors, tutordex.Query{Search: "ann"})
//	explore := tutordex.FilterSubjects(tutordex.DefaultCatalog(), "calc")
package tutordex
