package quiz

// MockExams is the built-in catalog. Seeded into the store at boot so fixed
// exams and generated ones live behind the same interface.
func MockExams() []Quiz {
	return []Quiz{
		{
			ID:          "pmp-fundamentals",
			Title:       "PMP Fundamentals Practice Exam",
			Description: "Core project-management concepts: process groups, agile, and stakeholder basics.",
			Important:   true,
			Questions: []Question{
				{
					Prompt:  "Which process group contains the Develop Project Charter process?",
					Options: []string{"Initiating", "Planning", "Executing", "Closing"},
					Kind:    KindSingleChoice,
					Answer:  Answer{Choice: "Initiating"},
					Explanation: "Develop Project Charter belongs to the Initiating process group; " +
						"it formally authorizes the project.",
				},
				{
					Prompt:  "Which of the following are values of the Agile Manifesto? Select all that apply.",
					Options: []string{"Individuals and interactions", "Comprehensive documentation", "Customer collaboration", "Following a plan"},
					Kind:    KindMultipleChoice,
					Answer:  Answer{Choices: []string{"Individuals and interactions", "Customer collaboration"}},
					Explanation: "The manifesto values individuals and interactions over processes and tools, " +
						"and customer collaboration over contract negotiation.",
				},
				{
					Prompt:  "Match each artifact to the approach it belongs to.",
					Options: []string{"Product backlog", "Gantt chart", "Burndown chart"},
					Kind:    KindMatching,
					Answer: Answer{Matches: map[string]string{
						"Product backlog": "Scrum",
						"Gantt chart":     "Predictive",
						"Burndown chart":  "Agile tracking",
					}},
					Explanation: "Backlogs are a Scrum artifact, Gantt charts come from predictive planning, " +
						"and burndown charts track remaining agile work.",
				},
			},
		},
		{
			ID:          "us-civics",
			Title:       "US Citizenship Civics Test",
			Description: "Sample questions drawn from the naturalization civics study set.",
			Questions: []Question{
				{
					Prompt:      "How many amendments does the U.S. Constitution have?",
					Options:     []string{"10", "21", "27", "50"},
					Kind:        KindSingleChoice,
					Answer:      Answer{Choice: "27"},
					Explanation: "The Constitution has 27 amendments; the first ten are the Bill of Rights.",
				},
				{
					Prompt:      "What did the Declaration of Independence do?",
					Options:     []string{"Declared independence from Great Britain", "Freed the slaves", "Established the Constitution", "Ended the Civil War"},
					Kind:        KindSingleChoice,
					Answer:      Answer{Choice: "Declared independence from Great Britain"},
					Explanation: "Adopted July 4, 1776, it announced the colonies' separation from Great Britain.",
				},
				{
					Prompt:  "Match each branch of government to its primary power.",
					Options: []string{"Legislative", "Executive", "Judicial"},
					Kind:    KindMatching,
					Answer: Answer{Matches: map[string]string{
						"Legislative": "Makes laws",
						"Executive":   "Enforces laws",
						"Judicial":    "Interprets laws",
					}},
					Explanation: "Congress makes laws, the President enforces them, and the courts interpret them.",
				},
			},
		},
	}
}
