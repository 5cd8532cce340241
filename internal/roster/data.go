package roster

// Default returns the lab's authored roster. A new value is built on every
// call so callers can never observe each other's changes.
func Default() Roster {
	return Roster{
		Vision: Vision{
			Title: "Research Vision",
			Paragraphs: []string{
				"We are committed to designing human-centered, AI-supported learning frameworks that integrate self-regulated learning and educational technology to improve the effectiveness and equity of language and interdisciplinary learning.",
				"We examine AI's role in teaching as an inspiration and feedback tool that helps learners remain agentic, develop critical digital literacy, and adopt sustainable learning strategies.",
			},
		},
		Groups: []Group{
			{
				Heading:   "Research Team",
				Highlight: true,
				Columns:   2,
				Members:   leadTeam(),
			},
			{
				Highlight: false,
				Columns:   3,
				Members:   team(),
			},
		},
		Footer: "© 2025 CWrite - The Education University of Hong Kong",
	}
}

func leadTeam() []Member {
	return []Member{
		{
			Name: "Dr. YANG, Yin Nicole (PhD)",
			Role: "Principal Investigator",
			Titles: []string{
				"Research Assistant Professor",
			},
			Interests: []string{
				"AI in interdisciplinary education",
				"Digital literacy and competency",
				"Second language acquisition",
				"Cognitive science in learning",
				"Emerging technologies and pedagogical innovation",
			},
			Email:   "yyin@eduhk.hk",
			Scholar: link("https://scholar.google.com/citations?user=bjITS38AAAAJ&hl=zh-CN&inst=9002373801639654337&oi=ao"),
			Photo:   "http://museaiwrite.eduhk.hk/wp-content/uploads/2025/05/图片11.png",
		},
		{
			Name: "Prof. LEE, Chi Kin John, JP (PhD)",
			Role: "Co-Principal Investigator & Advisor",
			Titles: []string{
				"President",
				"Chair Professor of Curriculum and Instruction",
				"Director, Academy for Applied Policy Studies and Education Futures",
				"Director, Academy for Educational Development and Innovation",
			},
			Interests: []string{
				"Curriculum and instruction",
				"Geographical and environmental education",
				"School improvement",
				"Teacher development",
				"Life and values education",
			},
			Email: "poffice@eduhk.hk",
			Photo: "/placeholder-user.svg",
		},
	}
}

func team() []Member {
	return []Member{
		{
			Name: "Prof. GU, Ming Yue Michelle (PhD)",
			Role: "Co-Investigator",
			Titles: []string{
				"Professor",
				"Assistant Vice President (Research)",
			},
			Interests: []string{
				"Multilingualism and mobility",
				"Internationalization in higher education",
				"(Digital) citizenship and identity studies",
				"Minority education",
				"Family language policy",
			},
			Email:   "mygu@eduhk.hk",
			Scholar: link("https://scholar.google.com/citations?user=PLuccV8AAAAJ&hl=en"),
			Photo:   "/placeholder-user.svg",
		},
		{
			Name: "Dr LIU, Yiqi April (PhD)",
			Role: "Co-Investigator",
			Titles: []string{
				"Assistant Professor",
			},
			Interests: []string{
				"Classroom discourse",
				"Language and identity",
				"Content and Language Integrated Learning",
				"Translanguaging and trans-semiotizing",
			},
			Email:   "liuyiqi@eduhk.hk",
			Scholar: link("https://scholar.google.com/citations?user=d_x9D8KvDlYC&hl=zh-TW"),
			Photo:   "/placeholder-user.svg",
		},
		{
			Name: "Mr. LIU, Tong Tony",
			Role: "Research Assistant",
			Titles: []string{
				"Graduate of AI & Educational Technology, EdUHK",
			},
			Interests: []string{
				"AI and design",
				"Robotics automation",
				"STEM",
			},
			Email: "tongliu@eduhk.hk",
			Photo: "https://museaiwrite.eduhk.hk/wp-content/uploads/2025/10/image-8-683x1024.png",
		},
	}
}

func link(url string) *string {
	return &url
}
