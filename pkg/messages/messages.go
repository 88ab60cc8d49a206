package messages

// User-facing error messages returned on the JSON error bodies.
// The application is Japanese-facing, so the texts are localized.
const (
	ArtistFetchError    = "アーティスト取得中にエラーが発生しました"
	AwardNameFetchError = "賞名取得中にエラーが発生しました"
	AwardTypeFetchError = "賞タイプ取得中にエラーが発生しました"
	CategoryFetchError  = "カテゴリ取得中にエラーが発生しました"
	DesignerFetchError  = "デザイナー取得中にエラーが発生しました"
	FiltersNotNil       = "filters can't be nil"
	GameNameFetchError  = "候補取得に失敗しました"
	GameNotFoundError   = "ゲームが見つかりませんでした"
	GameSearchError     = "ゲーム検索中にエラーが発生しました"
	GenreFetchError     = "ジャンル取得中にエラーが発生しました"
	MechanicFetchError  = "メカニクス取得中にエラーが発生しました"
	PublisherFetchError = "パブリッシャー取得中にエラーが発生しました"
)
