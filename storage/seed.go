package storage

import (
	"context"
	"fmt"

	"github.com/PRIGID-WEB-CLOUD/PortflowWrite/models"
)

// Seed populates an empty store with the fixed sample content the site ships
// with. A store that already holds items is left alone, so a persistent
// backend is only seeded on its first run.
func Seed(ctx context.Context, s Storage) error {
	items, err := s.GetStoreItems(ctx)
	if err != nil {
		return fmt.Errorf("check existing store items: %w", err)
	}
	if len(items) > 0 {
		return nil
	}

	for _, project := range sampleProjects {
		if _, err := s.CreateProject(ctx, project); err != nil {
			return fmt.Errorf("seed project %q: %w", project.Title, err)
		}
	}
	for _, post := range samplePosts {
		if _, err := s.CreatePost(ctx, post); err != nil {
			return fmt.Errorf("seed post %q: %w", post.Title, err)
		}
	}
	for _, item := range sampleStoreItems {
		if _, err := s.CreateStoreItem(ctx, item); err != nil {
			return fmt.Errorf("seed store item %q: %w", item.Title, err)
		}
	}
	return nil
}

var sampleProjects = []models.InsertProject{
	{
		Title:        "E-commerce Dashboard",
		Description:  "A comprehensive admin dashboard for managing online stores with real-time analytics and inventory management.",
		Image:        "https://images.unsplash.com/photo-1551288049-bebda4e38f71?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
		Category:     "web",
		Technologies: []string{"React", "Node.js", "MongoDB"},
		LiveURL:      "https://demo.example.com",
		GithubURL:    "https://github.com/example/dashboard",
		Featured:     true,
	},
	{
		Title:        "Task Management App",
		Description:  "A collaborative task management platform with kanban boards, real-time updates, and team analytics.",
		Image:        "https://images.unsplash.com/photo-1611224923853-80b023f02d71?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
		Category:     "web",
		Technologies: []string{"Vue.js", "Express", "PostgreSQL"},
		LiveURL:      "https://tasks.example.com",
		GithubURL:    "https://github.com/example/tasks",
		Featured:     true,
	},
	{
		Title:        "Fitness Mobile App",
		Description:  "A React Native fitness app with workout tracking, progress analytics, and social sharing features.",
		Image:        "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
		Category:     "mobile",
		Technologies: []string{"React Native", "Firebase", "Redux"},
		LiveURL:      "https://apps.apple.com/app/fitness",
		GithubURL:    "https://github.com/example/fitness",
		Featured:     true,
	},
}

var samplePosts = []models.InsertPost{
	{
		Title:         "Building Scalable React Applications in 2024",
		Content:       "# Building Scalable React Applications in 2024\n\nReact continues to evolve, and with it, the patterns and practices we use to build scalable applications...",
		Excerpt:       "Exploring the latest patterns and best practices for building maintainable React applications that scale with your team and user base.",
		Category:      "Development",
		Tags:          []string{"React", "JavaScript", "Best Practices"},
		FeaturedImage: "https://images.unsplash.com/photo-1461749280684-dccba630e2f6?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		Published:     true,
	},
	{
		Title:         "The Psychology Behind Effective UI Design",
		Content:       "# The Psychology Behind Effective UI Design\n\nUnderstanding user psychology is crucial for creating effective interfaces...",
		Excerpt:       "Understanding user psychology and cognitive principles to create interfaces that feel intuitive and reduce cognitive load.",
		Category:      "Design",
		Tags:          []string{"UI/UX", "Psychology", "Design"},
		FeaturedImage: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		Published:     true,
	},
	{
		Title:         "Remote Team Collaboration Best Practices",
		Content:       "# Remote Team Collaboration Best Practices\n\nWorking with distributed teams requires different approaches...",
		Excerpt:       "Lessons learned from leading distributed development teams and tools that make remote collaboration effective.",
		Category:      "Career",
		Tags:          []string{"Remote Work", "Team Management", "Productivity"},
		FeaturedImage: "https://images.unsplash.com/photo-1522071820081-009f0129c71c?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=300",
		Published:     true,
	},
}

var sampleStoreItems = []models.InsertStoreItem{
	{
		Title:       "React Component Library",
		Description: "A comprehensive library of 50+ modern React components with TypeScript support, Storybook documentation, and customizable themes.",
		Price:       4900, // $49.00
		Image:       "https://images.unsplash.com/photo-1633356122544-f134324a6cee?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
		Category:    "Templates",
		DownloadURL: "https://github.com/example/react-components",
		Featured:    true,
	},
	{
		Title:       "Full Stack SaaS Boilerplate",
		Description: "Complete SaaS starter with authentication, payments, admin dashboard, and email templates. Built with Next.js, Prisma, and Stripe.",
		Price:       12900, // $129.00
		Image:       "https://images.unsplash.com/photo-1460925895917-afdab827c52f?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
		Category:    "Boilerplates",
		DownloadURL: "https://github.com/example/saas-boilerplate",
		Featured:    true,
	},
	{
		Title:       "Minimalist Portfolio Template",
		Description: "Clean, modern portfolio template with dark mode, blog functionality, and contact forms. Perfect for developers and designers.",
		Price:       2900, // $29.00
		Image:       "https://images.unsplash.com/photo-1467232004584-a241de8bcf5d?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
		Category:    "Templates",
		DownloadURL: "https://github.com/example/portfolio-template",
		Featured:    true,
	},
	{
		Title:       "E-commerce Dashboard UI Kit",
		Description: "Professional dashboard design with 40+ screens, charts, tables, and components. Includes Figma files and React implementation.",
		Price:       7900, // $79.00
		Image:       "https://images.unsplash.com/photo-1551288049-bebda4e38f71?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
		Category:    "UI Kits",
		DownloadURL: "https://www.figma.com/file/example",
	},
	{
		Title:       "JavaScript Utility Functions",
		Description: "Collection of 100+ tested utility functions for common JavaScript tasks. Includes TypeScript definitions and comprehensive docs.",
		Price:       1900, // $19.00
		Image:       "https://images.unsplash.com/photo-1579468118864-1b9ea3c0db4a?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
		Category:    "Utilities",
		DownloadURL: "https://github.com/example/js-utils",
	},
	{
		Title:       "Mobile App UI Design System",
		Description: "Complete design system for mobile apps with 200+ components, icons, and templates. Available for Sketch and Figma.",
		Price:       8900, // $89.00
		Image:       "https://images.unsplash.com/photo-1512941937669-90a1b58e7e9c?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
		Category:    "Design Systems",
		DownloadURL: "https://www.figma.com/file/mobile-design-system",
	},
	{
		Title:       "API Documentation Template",
		Description: "Beautiful, interactive API documentation template with code examples, authentication guides, and responsive design.",
		Price:       3900, // $39.00
		Image:       "https://images.unsplash.com/photo-1551650975-87deedd944c3?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
		Category:    "Templates",
		DownloadURL: "https://github.com/example/api-docs",
	},
	{
		Title:       "Vue.js Admin Dashboard",
		Description: "Modern admin dashboard built with Vue 3, Composition API, and Vite. Includes authentication, charts, and CRUD operations.",
		Price:       6900, // $69.00
		Image:       "https://images.unsplash.com/photo-1551650975-87deedd944c3?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400",
		Category:    "Dashboards",
		DownloadURL: "https://github.com/example/vue-admin",
	},
}
