package model

// SampleDocument returns the document a new session starts from when no
// document is supplied.
func SampleDocument() Document {
	return Document{
		Personal: Personal{
			FullName: "Alex Jordan",
			JobTitle: "Senior Frontend Engineer",
			Email:    "alex.jordan@example.com",
			Phone:    "+1 (555) 012-3456",
			Location: "San Francisco, CA",
			LinkedIn: "linkedin.com/in/alexjordan",
			Website:  "alexjordan.dev",
		},
		Summary: "Passionate and results-driven Frontend Engineer with over 6 years of experience building scalable web applications. " +
			"Expert in React, TypeScript, and modern UI/UX principles. Proven track record of optimizing performance and leading " +
			"cross-functional teams to deliver high-quality software solutions.",
		Skills: []string{"React", "TypeScript", "Tailwind CSS", "Node.js", "GraphQL", "UI/UX Design", "AWS", "Performance Optimization"},
		Experience: []Experience{
			{
				ID:       "1",
				Role:     "Senior Frontend Developer",
				Company:  "TechFlow Solutions",
				Location: "San Francisco, CA",
				Dates:    "2021 - Present",
				Description: "• Led the migration of a legacy monolith to a micro-frontend architecture using React and Module Federation.\n" +
					"• Improved application load time by 40% through code splitting and lazy loading strategies.\n" +
					"• Mentored a team of 5 junior developers, establishing code quality standards and CI/CD pipelines.",
			},
			{
				ID:       "2",
				Role:     "Frontend Developer",
				Company:  "Creative Pulse",
				Location: "Austin, TX",
				Dates:    "2018 - 2021",
				Description: "• Developed responsive and accessible user interfaces for over 20 client projects using React and Redux.\n" +
					"• Collaborated closely with designers to implement pixel-perfect components from Figma prototypes.\n" +
					"• Integrated RESTful APIs and implemented real-time data visualization features.",
			},
		},
		Education: []Education{
			{
				ID:      "1",
				School:  "University of Technology",
				Degree:  "B.S. Computer Science",
				Dates:   "2014 - 2018",
				Details: "Graduated with Honors (3.9 GPA). Minor in Graphic Design.",
			},
		},
		CustomSections: []CustomSection{},
		SectionOrder:   append([]string(nil), DefaultSectionOrder...),
		Theme:          "standard",
	}
}
