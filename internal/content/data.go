package content

// Default returns the portfolio as published.
func Default() Portfolio {
	return Portfolio{
		Profile: Profile{
			Name:     "GOKUL A",
			Banner:   "GOKUL",
			Badge:    "Computer Science Engineer",
			Role:     "SOFTWARE ENGINEER",
			Headline: "Building high-performance applications with focus on Java Stack, AI/ML integration, and robust IoT solutions.",
			CGPA:     "8.02",
			Objective: "Seeking an opportunity in a dynamic organization to apply my knowledge of front-end and back-end " +
				"technologies in building scalable, secure, and user-friendly web applications. Passionate about " +
				"problem-solving, optimizing performance, and continuously learning modern frameworks and tools to " +
				"deliver innovative digital solutions.",
			Motto: "Innovation with Purpose",
			Traits: []Trait{
				{Title: "PRECISION", Note: "Architecture First"},
				{Title: "ADAPTABILITY", Note: "Continuous Learning"},
			},
		},
		Sections: []Section{
			{ID: SectionHome},
			{ID: SectionAbout, Title: "CAREER OBJECTIVE"},
			{ID: SectionSkills, Title: "TECHNICAL TOOLKIT", Subtitle: "Specialized skillsets across Analytics, Engineering Foundations, and Systems."},
			{ID: SectionProjects, Title: "PROJECT SHOWCASE", Subtitle: "Turning complex logic into functional digital products."},
			{ID: SectionExperience, Title: "THE JOURNEY", Subtitle: "Academic milestones and professional growth."},
			{ID: SectionActivities, Title: "EXTRACURRICULAR ACTIVITIES", Subtitle: "Life beyond code: leadership, sports, and community engagement."},
			{ID: SectionContact, Title: "GET IN TOUCH", Subtitle: "Ready to discuss your project or opportunity."},
		},
		Skills: []SkillCategory{
			{Category: "Analytics", Color: "#10b981", Skills: []string{"Pandas", "NumPy", "EDA", "Excel"}},
			{Category: "Foundations", Color: "#a855f7", Skills: []string{"Python", "C", "C++", "Java", "R", "JavaScript"}},
			{Category: "Algorithms", Color: "#3b82f6", Skills: []string{"Arrays", "Graphs", "Recursion", "Trees", "Linked List"}},
			{Category: "Networking", Color: "#06b6d4", Skills: []string{"TCP/IP", "OSI Model", "HTTP/HTTPS", "DNS", "Network Security"}},
			{Category: "Platforms", Color: "#6366f1", Skills: []string{"React", "Git", "GitHub", "VS Code", "Jupyter Notebook", "Vercel", "Notion"}},
		},
		Projects: []Project{
			{
				Title: "The Container Biryani",
				Tag:   "SAAS / BUSINESS",
				Description: "A comprehensive web-based Restaurant Management System designed for operational efficiency. " +
					"Features include real-time table management, digital menu integration, and automated inventory tracking.",
				Image:  "https://images.unsplash.com/photo-1552566626-52f8b828add9?auto=format&fit=crop&q=80&w=800",
				Tags:   []string{"React", "Java Stack", "MySQL", "Restaurant POS"},
				Accent: [2]string{"#f97316", "#ef4444"},
			},
			{
				Title: "LifeSync Habit Tracker",
				Tag:   "PRODUCTIVITY",
				Description: "A sophisticated day-to-day Habit Tracker that leverages behavioral psychology principles to help " +
					"users maintain streaks and visualize long-term habit formation through intuitive UI components.",
				Image:  "https://images.unsplash.com/photo-1484480974693-6ca0a78fb36b?auto=format&fit=crop&q=80&w=800",
				Tags:   []string{"React", "Context API", "LocalStorage", "Motion"},
				Accent: [2]string{"#22c55e", "#14b8a6"},
			},
			{
				Title: "Smart Bus Management",
				Tag:   "AI & ML",
				Description: "An intelligent transportation solution that uses smartphone tracking and AI/ML to deliver " +
					"real-time bus locations and accurate ETA predictions, improving passenger convenience.",
				Image:  "https://images.unsplash.com/photo-1544620347-c4fd4a3d5957?auto=format&fit=crop&q=80&w=800",
				Tags:   []string{"AI/ML", "Real-time Tracking", "GPS", "Fleet Monitoring"},
				Accent: [2]string{"#3b82f6", "#06b6d4"},
			},
			{
				Title: "ShopEasy E-Commerce",
				Tag:   "FULL STACK",
				Description: "An E-commerce website developed for a local shop using HTML, CSS, and JavaScript for the " +
					"front-end and SQL Server for robust database management.",
				Image:  "https://images.unsplash.com/photo-1607082348824-0a96f2a4b9da?auto=format&fit=crop&q=80&w=800",
				Tags:   []string{"HTML/CSS", "JavaScript", "SQL Server", "Local Business"},
				Accent: [2]string{"#a855f7", "#ec4899"},
			},
		},
		Education: []Education{
			{Title: "Bachelor of Engineering (CSE)", Institution: "Paavai Engineering College", Year: "Pursuing", Score: "8.02 CGPA"},
			{Title: "Higher Secondary Certificate", Institution: "Vinayaga Vidhyalaya Matric", Year: "2022", Score: "62%"},
			{Title: "SSLC Certificate", Institution: "Vinayaga Vidhyalaya Matric", Year: "2020", Score: "91%"},
		},
		Events: []Event{
			{
				Title:       "IoT Workshop",
				Venue:       "HIT CHENNAI",
				Date:        "06/04/2024",
				Description: "Intensive hands-on session focusing on sensor integration and smart systems architecture.",
			},
			{
				Title:       "Paper Presentation",
				Venue:       "GCT COIMBATORE",
				Date:        "21/03/2025",
				Description: "Presentation on the future of Virtual Reality and its industrial applications.",
			},
		},
		Activities: []Activity{
			{
				Title: "Volunteering [Y.R.C]",
				Description: "Serving as the Overall Coordinator of the Youth Red Cross. Orchestrated community service " +
					"initiatives, health awareness campaigns, and mobilization of large-scale student volunteer teams.",
				Color: "#f43f5e",
			},
			{Title: "Content Creation", Description: "Producing engaging technical and educational content to foster digital learning and growth.", Color: "#f59e0b"},
			{Title: "Technical Seminars", Description: "Presented advanced computer science topics and workshops to student peers and faculty.", Color: "#a855f7"},
			{Title: "Sports Excellence", Description: "Competitive badminton player focused on maintaining physical health and strategic discipline.", Color: "#3b82f6"},
			{Title: "Event Organization", Description: "Successfully coordinated collegiate events, managing logistics and large-scale team efforts.", Color: "#06b6d4"},
		},
		Social: []SocialLink{
			{Label: "Email", URL: "mailto:gokul.workdesk@gmail.com"},
			{Label: "LinkedIn", URL: "https://www.linkedin.com/in/gokul-a-7221872a0"},
			{Label: "GitHub", URL: "https://github.com/gokulananth1"},
			{Label: "LeetCode", URL: "https://leetcode.com/gokulananth1"},
		},
		Assets: Assets{
			ProfileImage:         "/Formal Wear Image.png",
			ProfileImageFallback: "Formal Wear Image.png",
			Resume:               "Gokul_A_Resume.pdf",
			CV:                   "Gokul A CV (Java and DSS).pdf",
		},
	}
}
