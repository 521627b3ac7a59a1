package services

import "degreedecider/internal/models/response_models"

const (
	DegreeComputerScience      = "Computer Science"
	DegreeBusinessAdmin        = "Business Administration"
	DegreeEngineering          = "Engineering"
	DegreePsychology           = "Psychology"
	DegreeEnvironmentalScience = "Environmental Science"
	DegreeGraphicDesign        = "Graphic Design"
	DegreeEducation            = "Education"
	DegreeLiberalArts          = "Liberal Arts"
)

var degreeCatalog = map[string]response_models.DegreeRecommendation{
	DegreeComputerScience: {
		Name:        DegreeComputerScience,
		Description: "A degree focused on programming, algorithms, and software development. Perfect for logical thinkers who love technology.",
		Reasons: []string{
			"Your interest in technology and problem-solving aligns perfectly",
			"Strong foundation for a career in software development",
			"Growing field with excellent job prospects",
		},
		Skills: []string{"Programming", "Algorithm Design", "Software Architecture", "Data Structures"},
		Icon:   "💻",
	},
	DegreeBusinessAdmin: {
		Name:        DegreeBusinessAdmin,
		Description: "Learn management, finance, marketing, and entrepreneurship. Ideal for future leaders and innovators.",
		Reasons: []string{
			"Your interest in business and leadership is evident",
			"Versatile degree with diverse career paths",
			"Strong communication skills will serve you well",
		},
		Skills: []string{"Strategic Planning", "Financial Analysis", "Team Management", "Marketing"},
		Icon:   "💼",
	},
	DegreeEngineering: {
		Name:        DegreeEngineering,
		Description: "Apply math and science to design and build solutions. Great for hands-on problem solvers.",
		Reasons: []string{
			"Your analytical and practical skills are a perfect match",
			"Love for hands-on work will thrive in this field",
			"Make a real-world impact through innovation",
		},
		Skills: []string{"Technical Design", "Problem Solving", "Project Management", "CAD Software"},
		Icon:   "⚙️",
	},
	DegreePsychology: {
		Name:        DegreePsychology,
		Description: "Study human behavior, mental processes, and emotional well-being. Perfect for empathetic helpers.",
		Reasons: []string{
			"Your desire to help others is a strong indicator",
			"Strong communication skills are essential in this field",
			"Make a meaningful difference in people's lives",
		},
		Skills: []string{"Active Listening", "Research Methods", "Counseling", "Critical Thinking"},
		Icon:   "🧠",
	},
	DegreeEnvironmentalScience: {
		Name:        DegreeEnvironmentalScience,
		Description: "Study ecosystems, sustainability, and conservation. Ideal for those passionate about our planet.",
		Reasons: []string{
			"Your interest in science and the environment aligns well",
			"Contribute to solving critical global challenges",
			"Mix of fieldwork and research matches your preferences",
		},
		Skills: []string{"Field Research", "Data Analysis", "Sustainability Planning", "Lab Techniques"},
		Icon:   "🌍",
	},
	DegreeGraphicDesign: {
		Name:        DegreeGraphicDesign,
		Description: "Combine creativity with technology to create visual communications. Perfect for artistic problem solvers.",
		Reasons: []string{
			"Your creativity and artistic interests shine through",
			"Balance of creative freedom and structured design principles",
			"Growing demand in digital media and marketing",
		},
		Skills: []string{"Adobe Creative Suite", "Visual Communication", "Typography", "UX/UI Design"},
		Icon:   "🎨",
	},
	DegreeEducation: {
		Name:        DegreeEducation,
		Description: "Inspire and teach the next generation. Great for patient, passionate communicators.",
		Reasons: []string{
			"Your passion for helping and communicating is key",
			"Make a lasting impact on students' lives",
			"Rewarding career with strong job security",
		},
		Skills: []string{"Curriculum Development", "Classroom Management", "Assessment", "Communication"},
		Icon:   "👨‍🏫",
	},
	DegreeLiberalArts: {
		Name:        DegreeLiberalArts,
		Description: "Explore diverse subjects including humanities, social sciences, and natural sciences. Perfect for well-rounded thinkers.",
		Reasons: []string{
			"Your varied interests suggest a multidisciplinary approach",
			"Develop critical thinking and communication skills",
			"Flexibility to specialize later in your academic journey",
		},
		Skills: []string{"Critical Thinking", "Writing", "Research", "Interdisciplinary Analysis"},
		Icon:   "📚",
	},
}

// LookupDegree returns a copy of the named catalog entry.
func LookupDegree(name string) (response_models.DegreeRecommendation, bool) {
	d, ok := degreeCatalog[name]
	if !ok {
		return response_models.DegreeRecommendation{}, false
	}
	return d.Clone(), true
}
