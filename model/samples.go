package model

// SampleAnnouncements seeds an empty announcements collection on the first
// list view. Ordered by date descending, the same order the list query uses.
var SampleAnnouncements = []Announcement{
	{
		Title: "Welcome to the course!",
		Date:  "2026-03-09",
		HTML: "Class begins Monday. Check the schedule page for lecture " +
			"times and make sure you can sign in before the first session.",
		IsDraft: true,
	},
	{
		Title: "Example Announcement",
		Date:  "2026-03-01",
		HTML: "Certificates will be e-mailed to qualifying participants " +
			"within a few weeks of the class end date.",
		IsDraft: false,
	},
}
