// Package content holds the static portfolio data rendered by the ui.
package content

type Link struct {
	Label string
	URL   string
}

type Stat struct {
	Label  string
	Target int
}

type SkillCategory struct {
	Title  string
	Skills []string
}

type Education struct {
	Degree      string
	Institution string
	Year        string
	Description string
}

type Experience struct {
	Title            string
	Company          string
	Duration         string
	Description      string
	Responsibilities []string
}

type Service struct {
	Title       string
	Description string
}

type Project struct {
	Title       string
	Status      string
	Description string
	Tech        []string
	Note        string
	Links       []Link
}

type Portfolio struct {
	Name          string
	Tagline       string
	Summary       string
	Social        []Link
	About         []string
	Stats         []Stat
	Skills        []SkillCategory
	Education     []Education
	Experience    []Experience
	Services      []Service
	ProjectsIntro string
	Featured      Project
	Projects      []Project
	ContactTitle  string
	ContactBlurb  string
	Contacts      []Link
	Footer        string
}

// Default returns the portfolio shown by the application.
func Default() Portfolio {
	return Portfolio{
		Name:    "Sulayman",
		Tagline: "Full Stack Developer | Tech Founder | CS Student",
		Summary: "Building scalable digital solutions that disrupt and empower. Founder of S8Globals, " +
			"currently pursuing Computer Science at University of the People.",
		Social: []Link{
			{Label: "GitHub", URL: "https://github.com/"},
			{Label: "LinkedIn", URL: "https://linkedin.com/"},
			{Label: "Email", URL: "mailto:sulayman@example.com"},
		},
		About: []string{
			"I'm a driven full stack developer with a passion for creating innovative digital solutions. " +
				"As the founder of S8Globals, I focus on building scalable applications that make a real-world impact.",
			"Currently grinding through my Computer Science degree at University of the People, I blend academic " +
				"rigor with hands-on project execution. I specialize in crafting clean, maintainable code and " +
				"user-centric designs.",
		},
		Stats: []Stat{
			{Label: "Projects Completed", Target: 50},
			{Label: "Happy Clients", Target: 25},
			{Label: "Years Experience", Target: 3},
			{Label: "Technologies", Target: 15},
		},
		Skills: []SkillCategory{
			{Title: "Frontend", Skills: []string{"React.js", "Next.js", "Vue.js", "TypeScript", "TailwindCSS", "Bootstrap"}},
			{Title: "Backend", Skills: []string{"Node.js", "Express", "Python", "Django", "Flask", "REST APIs"}},
			{Title: "Database & Tools", Skills: []string{"MongoDB", "PostgreSQL", "MySQL", "Git", "JWT", "Vercel"}},
		},
		Education: []Education{
			{
				Degree:      "Bachelor of Science in Computer Science",
				Institution: "University of the People",
				Year:        "Expected 2025",
				Description: "Currently pursuing a comprehensive Computer Science degree, focusing on algorithms, " +
					"data structures, software engineering, and artificial intelligence.",
			},
			{
				Degree:      "High School Diploma",
				Institution: "[Your High School Name]",
				Year:        "2019",
				Description: "Completed secondary education with a strong foundation in mathematics and science, " +
					"fostering an early interest in technology.",
			},
		},
		Experience: []Experience{
			{
				Title:    "Founder & Lead Developer",
				Company:  "S8Globals",
				Duration: "Jan 2022 - Present",
				Description: "Founded S8Globals to build scalable digital solutions. Led development of multiple " +
					"full-stack applications, managed client relationships and drove the technical direction of the company.",
				Responsibilities: []string{
					"Architected and developed full-stack applications using React, Node.js, and MongoDB.",
					"Managed project lifecycles from ideation to deployment on Vercel and DigitalOcean.",
					"Led a small team, ensuring code quality and adherence to Agile methodologies.",
					"Secured and managed client projects, delivering tailored software solutions.",
				},
			},
			{
				Title:    "Freelance Full Stack Developer",
				Company:  "Self-Employed",
				Duration: "Mar 2020 - Dec 2021",
				Description: "Provided full-stack development services to various clients, building custom web " +
					"applications and improving existing systems.",
				Responsibilities: []string{
					"Developed responsive frontends with React.js and TailwindCSS.",
					"Built robust backend APIs using Node.js and Express.",
					"Implemented database solutions with PostgreSQL and MySQL.",
					"Collaborated directly with clients to gather requirements and deliver solutions.",
				},
			},
		},
		Services: []Service{
			{Title: "Full Stack Development", Description: "End-to-end development of web applications, from robust backend APIs to dynamic user interfaces."},
			{Title: "Custom Software Solutions", Description: "Tailored software development to meet unique business needs and solve complex problems."},
			{Title: "API Development & Integration", Description: "Building secure and scalable RESTful APIs and integrating third-party services."},
			{Title: "Database Design & Management", Description: "Designing efficient database schemas and managing data for optimal performance."},
			{Title: "UI/UX Design & Prototyping", Description: "Creating intuitive and engaging user interfaces with a focus on user experience."},
			{Title: "Code Review & Optimization", Description: "Analyzing existing codebases for improvements, performance optimization, and best practices."},
		},
		ProjectsIntro: "Here are some of my recent projects that showcase my skills in full-stack development, " +
			"UI/UX design, and problem-solving.",
		Featured: Project{
			Title:  "S8Globals Platform",
			Status: "Live",
			Description: "A comprehensive digital solutions platform serving multiple clients worldwide. Features " +
				"include real-time analytics, client management, project tracking, and automated billing systems. " +
				"Built with modern technologies for scalability and performance.",
			Tech:  []string{"React.js", "Node.js", "MongoDB", "Socket.io", "Stripe API", "AWS"},
			Links: []Link{{Label: "View Live", URL: "#"}, {Label: "Source Code", URL: "#"}},
		},
		Projects: []Project{
			{
				Title:  "E-Commerce Dashboard",
				Status: "In Progress",
				Description: "Full-stack e-commerce management system with real-time analytics, inventory " +
					"management, and automated reporting features.",
				Tech:  []string{"Next.js", "PostgreSQL", "TailwindCSS", "Chart.js"},
				Note:  "85% Complete",
				Links: []Link{{Label: "Preview", URL: "#"}},
			},
			{
				Title:  "Task Management App",
				Status: "Completed",
				Description: "Collaborative task management application with real-time updates, team " +
					"collaboration, and project timeline tracking.",
				Tech:  []string{"Vue.js", "Express", "Socket.io", "MongoDB"},
				Note:  "Award Winner",
				Links: []Link{{Label: "View Project", URL: "#"}},
			},
		},
		ContactTitle: "Let's Connect",
		ContactBlurb: "Ready to bring your ideas to life? Let's discuss your next project.",
		Contacts: []Link{
			{Label: "Email", URL: "mailto:sulayman@example.com"},
			{Label: "LinkedIn", URL: "#"},
			{Label: "GitHub", URL: "#"},
		},
		Footer: "© 2024 Sulayman. Built with Go & lipgloss.",
	}
}
