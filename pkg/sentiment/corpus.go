package sentiment

const (
	LabelPositive = "positive"
	LabelNegative = "negative"
	LabelNeutral  = "neutral"
)

type Sample struct {
	Label string
	Text  string
}

// trainingSamples is the corpus the classifier is fitted on at startup. It is
// deliberately small; the service exists to exercise deployments, not to win
// benchmarks.
var trainingSamples = []Sample{
	{LabelPositive, "This movie was fantastic and I loved it"},
	{LabelPositive, "An amazing film with a brilliant cast"},
	{LabelPositive, "Absolutely wonderful, a true masterpiece"},
	{LabelPositive, "I loved every minute, excellent pacing"},
	{LabelPositive, "Great story and superb acting"},
	{LabelPositive, "One of the best movies I have ever seen"},
	{LabelPositive, "A delightful and moving experience"},
	{LabelPositive, "Stunning visuals and a fantastic soundtrack"},
	{LabelPositive, "Brilliant direction, I enjoyed it thoroughly"},
	{LabelPositive, "Excellent film, highly recommended"},

	{LabelNegative, "This movie was terrible and I hated it"},
	{LabelNegative, "An awful film with a horrible script"},
	{LabelNegative, "Absolutely dreadful, a complete disaster"},
	{LabelNegative, "I hated every minute, painfully boring"},
	{LabelNegative, "Bad story and atrocious acting"},
	{LabelNegative, "One of the worst movies I have ever seen"},
	{LabelNegative, "A dull and tedious experience"},
	{LabelNegative, "Terrible effects and an awful soundtrack"},
	{LabelNegative, "Horrible direction, a total waste of time"},
	{LabelNegative, "Dreadful film, not recommended"},

	{LabelNeutral, "This movie was okay I guess"},
	{LabelNeutral, "An average film, nothing special"},
	{LabelNeutral, "It was fine, fairly watchable"},
	{LabelNeutral, "Decent enough but forgettable"},
	{LabelNeutral, "Neither good nor bad, just okay"},
	{LabelNeutral, "A passable movie, middle of the road"},
	{LabelNeutral, "It was alright, some parts worked"},
	{LabelNeutral, "An ordinary film with an ordinary plot"},
	{LabelNeutral, "Fine for a rainy afternoon"},
	{LabelNeutral, "Okay acting, average story, decent ending"},
}
