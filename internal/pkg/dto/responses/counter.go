package responses

type ClientCounters struct {
	Messages int64 `json:"messages"`
	Reports  int64 `json:"reports"`
	Payments int64 `json:"payments"`
}

type AdminCounters struct {
	Messages     int64 `json:"messages"`
	Appointments int64 `json:"appointments"`
	Payments     int64 `json:"payments"`
}
