package content

const placeholderAvatar = "/placeholder.svg?height=200&width=200"
const placeholderCard = "/placeholder.svg?height=200&width=300"

// Default returns the placeholder document a page shows before (or instead
// of) the served content.
func Default() Document {
	return Document{
		Hero: Hero{
			Title:     "Hello, I'm John Doe",
			Subtitle:  "A passionate Full Stack Developer",
			AvatarURL: placeholderAvatar,
		},
		Projects: []Project{
			{
				Title:           "Default Project",
				Description:     "A placeholder project description.",
				Image:           placeholderCard,
				Tags:            []string{"React"},
				Link:            "#",
				LongDescription: "This is a placeholder project.",
			},
		},
		Skills: []string{"JavaScript", "React", "Node.js"},
	}
}

// Seed returns the document served by the content endpoint.
func Seed() Document {
	return Document{
		Hero: Hero{
			Title:     "Hello, I'm John Doe",
			Subtitle:  "A passionate Full Stack Developer crafting innovative digital solutions in New York City",
			AvatarURL: placeholderAvatar,
		},
		Projects: []Project{
			{
				Title:           "Project 1",
				Description:     "A brief description of the project and its key features.",
				Image:           placeholderCard,
				Tags:            []string{"React", "Node.js", "MongoDB"},
				Link:            "#",
				LongDescription: "This project showcases a full-stack application built with React, Node.js, and MongoDB. It features real-time data updates, user authentication, and responsive design.",
			},
			{
				Title:           "Project 2",
				Description:     "Another interesting project with its unique selling points.",
				Image:           placeholderCard,
				Tags:            []string{"Next.js", "TypeScript", "Tailwind CSS"},
				Link:            "#",
				LongDescription: "A server-side rendered application built with Next.js and TypeScript. It utilizes Tailwind CSS for styling and implements advanced SEO techniques for optimal performance.",
			},
			{
				Title:           "Project 3",
				Description:     "Yet another cool project showcasing different technologies.",
				Image:           placeholderCard,
				Tags:            []string{"Vue.js", "Express", "PostgreSQL"},
				Link:            "#",
				LongDescription: "This project demonstrates a Vue.js frontend with an Express backend, using PostgreSQL for data storage. It includes features like data visualization and complex database queries.",
			},
		},
		Skills: []string{"JavaScript", "TypeScript", "React", "Next.js", "Node.js", "Python", "SQL", "Git"},
	}
}
