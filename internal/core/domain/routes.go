package domain

// defaultRoutes is the compiled-in navigation table. Order is significant:
// lookups are first-match-wins.
var defaultRoutes = []Route{
	{Path: "/student", Title: "Classes", Icon: IconBookOpen, ShowInSidebar: true, UserType: UserStudent},
	{Path: "/student/discussions", Title: "Discussions", Icon: IconMessageSquare, ShowInSidebar: true, UserType: UserStudent},
	{Path: "/student/announcements", Title: "Announcements", Icon: IconMegaphone, ShowInSidebar: true, UserType: UserStudent},
	{Path: "/student/announcements/:announcementId", Title: "Announcements", UserType: UserStudent},
	{Path: "/student/forums", Title: "Forums", Icon: IconBell, ShowInSidebar: true, UserType: UserStudent},
	{Path: "/student/classes/:classId", Title: "Class", UserType: UserStudent},
	{Path: "/student/discussions/create", Title: "Discussion", UserType: UserStudent},
	{Path: "/student/discussions/:discussionId", Title: "Discussion", UserType: UserStudent},
	{Path: "/student/forums/create", Title: "Forum", UserType: UserStudent},
	{Path: "/student/classes/:classId/create-post", Title: "Class Post", UserType: UserStudent},
	{Path: "/student/profile", Title: "Profile", UserType: UserStudent},

	{Path: "/faculty", Title: "Dashboard", Icon: IconLayoutDashboard, ShowInSidebar: true, UserType: UserFaculty},
	{Path: "/faculty/classes", Title: "Classes", Icon: IconBookOpen, ShowInSidebar: true, UserType: UserFaculty},
	{Path: "/faculty/classes/:classId", Title: "Class Details", UserType: UserFaculty},
	{Path: "/faculty/assignments", Title: "Assignments", Icon: IconFileText, ShowInSidebar: true, UserType: UserFaculty},
	{Path: "/faculty/assignments/create", Title: "Assignment", UserType: UserFaculty},
	{Path: "/faculty/profile", Title: "Profile", UserType: UserFaculty},
	{Path: "/faculty/students", Title: "Students", UserType: UserFaculty},
	{Path: "/faculty/discussions", Title: "Discussions", Icon: IconMessageSquare, ShowInSidebar: true, UserType: UserFaculty},
	{Path: "/faculty/discussions/create", Title: "Discussion", UserType: UserFaculty},
	{Path: "/faculty/discussions/:discussionId", Title: "Discussion", UserType: UserFaculty},
	{Path: "/faculty/announcements/:announcementId", Title: "Announcements", UserType: UserFaculty},
	{Path: "/faculty/forums", Title: "Forums", Icon: IconBell, ShowInSidebar: true, UserType: UserFaculty},
	{Path: "/faculty/forums/create", Title: "Forum", UserType: UserFaculty},
	{Path: "/faculty/announcements", Title: "Announcements", Icon: IconMegaphone, ShowInSidebar: true, UserType: UserFaculty},

	{Path: "/student/forums/:forumId", Title: "Forum", UserType: UserStudent},
	{Path: "/faculty/forums/:forumId", Title: "Forum", UserType: UserFaculty},
	{Path: "/student/assignments/:assignmentId", Title: "Assignment", UserType: UserStudent},
	{Path: "/faculty/assignments/:assignmentId", Title: "Assignment", UserType: UserFaculty},
}

// DefaultRoutes returns a copy of the compiled-in table.
func DefaultRoutes() []Route {
	return CloneRoutes(defaultRoutes)
}

// CloneRoutes returns a copy of routes so callers cannot mutate a shared table.
func CloneRoutes(routes []Route) []Route {
	out := make([]Route, len(routes))
	copy(out, routes)
	return out
}
