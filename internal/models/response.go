package models

type ReportMetadata struct {
	ObjectsScanned   int      `json:"objects_scanned"`
	Matched          int      `json:"matched"`
	Errors           []string `json:"errors,omitempty"`
	ProcessingTimeMs int64    `json:"processing_time_ms"`
	CacheHit         bool     `json:"cache_hit"`
}

type FormattedPrices struct {
	Mean       string `json:"mean"`
	Median     string `json:"median"`
	Difference string `json:"difference"`
}

type ReportResponse struct {
	Report    Report          `json:"report"`
	Formatted FormattedPrices `json:"formatted"`
	Metadata  ReportMetadata  `json:"metadata"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
