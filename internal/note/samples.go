package note

// Samples returns the notes a new board starts with unless asked to start
// empty.
func Samples() []Note {
	return []Note{
		{ID: 1, Title: "Weekly sync", Content: "Prepare the **status update** and review open tickets.", Label: LabelWork},
		{ID: 2, Title: "Groceries", Content: "- oat milk\n- coffee beans\n- lemons", Label: LabelPersonal},
		{ID: 3, Title: "Exam prep", Content: "Chapters 4-6, focus on *graph traversal*.", Label: LabelStudy},
		{ID: 4, Title: "Ideas", Content: "Try a dark theme for the board.", Label: LabelOther},
	}
}
