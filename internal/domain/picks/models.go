package picks

import "time"

// ResultCorrect is the result value for a prediction that matched the outcome.
const ResultCorrect = "correct"

// Recommendation values with dedicated badge styling.
const (
	RecommendationStrong   = "Strong Pick"
	RecommendationModerate = "Moderate Pick"
	RecommendationWeak     = "Weak Pick"
)

// YesterdayDoc is the yesterday.json document.
type YesterdayDoc struct {
	Summary YesterdaySummary `json:"summary"`
	Games   []ResultGame     `json:"games"`
}

// YesterdaySummary aggregates the previous day's predictions.
type YesterdaySummary struct {
	TotalGames         int      `json:"total_games"`
	CorrectPredictions int      `json:"correct_predictions"`
	Accuracy           float64  `json:"accuracy"`
	NotableOutcomes    []string `json:"notable_outcomes,omitempty"`
}

// ResultGame is a finished game compared against its prediction.
type ResultGame struct {
	HomeTeam        string    `json:"home_team"`
	AwayTeam        string    `json:"away_team"`
	PredictedWinner string    `json:"predicted_winner"`
	ActualWinner    string    `json:"actual_winner"`
	PredictedScore  []float64 `json:"predicted_score,omitempty"`
	ActualScore     []float64 `json:"actual_score,omitempty"`
	Confidence      float64   `json:"confidence"`
	Result          string    `json:"result"`
	KeyFactors      []string  `json:"key_factors,omitempty"`
	Notes           string    `json:"notes,omitempty"`
}

// Correct reports whether the prediction was graded correct.
func (g ResultGame) Correct() bool {
	return g.Result == ResultCorrect
}

// TodayDoc is the today.json document.
type TodayDoc struct {
	Summary TodaySummary     `json:"summary"`
	Games   []PredictionGame `json:"games"`
}

// TodaySummary aggregates today's slate.
type TodaySummary struct {
	TotalGames    int       `json:"total_games"`
	AvgConfidence float64   `json:"avg_confidence"`
	TopPicks      []TopPick `json:"top_picks,omitempty"`
}

// TopPick is a highlighted prediction.
type TopPick struct {
	Pick       string  `json:"pick"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning,omitempty"`
}

// PredictionGame is a game with a same-day prediction.
type PredictionGame struct {
	HomeTeam        string    `json:"home_team"`
	AwayTeam        string    `json:"away_team"`
	PredictedWinner string    `json:"predicted_winner"`
	Confidence      float64   `json:"confidence"`
	WinProbability  *float64  `json:"win_probability,omitempty"`
	PredictedScore  []float64 `json:"predicted_score,omitempty"`
	Recommendation  string    `json:"recommendation"`
	GameTime        string    `json:"game_time,omitempty"`
	Status          string    `json:"status,omitempty"`
	KeyFactors      []string  `json:"key_factors,omitempty"`
	Analysis        string    `json:"analysis,omitempty"`
}

// Featured reports whether the game is a strong pick.
func (g PredictionGame) Featured() bool {
	return g.Recommendation == RecommendationStrong
}

// PickIsHome reports whether the predicted winner is the home side.
func (g PredictionGame) PickIsHome() bool {
	return g.PredictedWinner == g.HomeTeam
}

// TomorrowDoc is the tomorrow.json document.
type TomorrowDoc struct {
	Summary TomorrowSummary `json:"summary"`
	Games   []PreviewGame   `json:"games"`
}

// TomorrowSummary aggregates the next day's slate.
type TomorrowSummary struct {
	TotalGames     int      `json:"total_games"`
	GamesToWatch   int      `json:"games_to_watch"`
	EarlyFavorites []string `json:"early_favorites,omitempty"`
}

// PreviewGame is an early look at an upcoming game.
type PreviewGame struct {
	HomeTeam              string   `json:"home_team"`
	AwayTeam              string   `json:"away_team"`
	EarlyPrediction       string   `json:"early_prediction,omitempty"`
	PreliminaryConfidence *float64 `json:"preliminary_confidence,omitempty"`
	GameTime              string   `json:"game_time,omitempty"`
	KeyMatchup            string   `json:"key_matchup,omitempty"`
	FactorsToMonitor      []string `json:"factors_to_monitor,omitempty"`
	Notes                 string   `json:"notes,omitempty"`
}

// PerformanceDoc is the performance.json document.
type PerformanceDoc struct {
	ModelStats        ModelStats        `json:"model_stats"`
	RecentPerformance RecentPerformance `json:"recent_performance"`
	ModelInsights     []string          `json:"model_insights,omitempty"`
}

// ModelStats holds lifetime model accuracy.
type ModelStats struct {
	OverallAccuracy    float64                 `json:"overall_accuracy"`
	TotalPredictions   int                     `json:"total_predictions"`
	CorrectPredictions int                     `json:"correct_predictions"`
	LastUpdated        *time.Time              `json:"last_updated,omitempty"`
	ConfidenceBrackets map[string]BracketStats `json:"confidence_brackets,omitempty"`
}

// BracketStats is the accuracy of predictions in one confidence bracket.
type BracketStats struct {
	Accuracy    float64 `json:"accuracy"`
	Predictions int     `json:"predictions"`
}

// RecentPerformance holds rolling-window accuracy.
type RecentPerformance struct {
	Last7Days  WindowStats `json:"last_7_days"`
	Last30Days WindowStats `json:"last_30_days"`
}

// WindowStats is the accuracy over a rolling window.
type WindowStats struct {
	Accuracy    float64 `json:"accuracy"`
	Predictions int     `json:"predictions"`
}

// Bundle is the complete input of one render pass.
type Bundle struct {
	Yesterday   YesterdayDoc
	Today       TodayDoc
	Tomorrow    TomorrowDoc
	Performance PerformanceDoc
}
