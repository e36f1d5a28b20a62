package analysis

// Request 는 콘텐츠 분석 요청 본문이다.
// platform 과 content 만 필수이며 나머지는 선택 항목이다.
type Request struct {
	Platform       string   `json:"platform" binding:"required"`
	Content        string   `json:"content" binding:"required"`
	Title          string   `json:"title"`
	Hashtags       []string `json:"hashtags"`
	Geo            string   `json:"geo"`
	Niche          string   `json:"niche"`
	TargetAudience string   `json:"target_audience"`
}
