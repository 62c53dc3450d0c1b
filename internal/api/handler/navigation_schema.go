package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type titleQuery struct {
	Path string `query:"path" validate:"required"`
}

type listQuery struct {
	UserType string `query:"user_type" validate:"omitempty,usertype"`
}

type titleResponse struct {
	Path  string `json:"path"`
	Title string `json:"title"`
	Match string `json:"match"`
	// Route is the matched pattern, absent on a miss.
	Route string `json:"route,omitempty"`
}

type routeResponse struct {
	Path          string `json:"path"`
	Title         string `json:"title"`
	Icon          string `json:"icon,omitempty"`
	ShowInSidebar bool   `json:"showInSidebar"`
	UserType      string `json:"userType"`
	Dynamic       bool   `json:"dynamic"`
}

type routeListResponse struct {
	UserType string          `json:"userType,omitempty"`
	Count    int             `json:"count"`
	Data     []routeResponse `json:"data"`
}
