// Package seed loads sample content for development environments: a few
// community groups with discussion threads, one course with its quiz, and
// a watch catalog. Each collection is seeded only when empty, so reseeding
// an existing database is a no-op.
package seed

import (
	"context"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/gatherpoint/gatherpoint/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// SampleData seeds every content collection that is currently empty.
func SampleData(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	if err := seedGroups(ctx, db, logger); err != nil {
		return err
	}
	if err := seedDiscussions(ctx, db, logger); err != nil {
		return err
	}
	if err := seedCourse(ctx, db, logger); err != nil {
		return err
	}
	return seedVideos(ctx, db, logger)
}

func isEmpty(ctx context.Context, db *mongo.Database, collection string) (bool, error) {
	n, err := db.Collection(collection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

func insertAll(ctx context.Context, db *mongo.Database, collection string, docs []any) error {
	_, err := db.Collection(collection).InsertMany(ctx, docs)
	return err
}

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func seedGroups(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	empty, err := isEmpty(ctx, db, "groups")
	if err != nil || !empty {
		return err
	}

	groups := []models.Group{
		{
			ID:              "1",
			Title:           "Youth Ministry",
			Description:     "A vibrant community for young people to grow in faith, build relationships, and serve together.",
			Image:           "https://images.unsplash.com/photo-1522202176988-66273c2fd55f?w=400&h=300&fit=crop",
			Category:        models.CategoryMinistries,
			Country:         "United States",
			Language:        "English",
			MemberCount:     45,
			DiscussionCount: 12,
			CreatedAt:       day("2024-01-15"),
			CreatedBy:       "admin",
		},
		{
			ID:              "2",
			Title:           "Prayer Warriors",
			Description:     "A dedicated group focused on prayer and intercession. Share prayer requests, testimonies, and support one another.",
			Image:           "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=400&h=300&fit=crop",
			Category:        models.CategoryMinistries,
			Country:         "Canada",
			Language:        "English",
			MemberCount:     78,
			DiscussionCount: 23,
			CreatedAt:       day("2024-01-10"),
			CreatedBy:       "admin",
		},
		{
			ID:              "3",
			Title:           "Bible Study Fellowship",
			Description:     "Weekly Bible studies, theological discussions, and spiritual insights shared in a supportive environment.",
			Image:           "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=300&fit=crop",
			Category:        models.CategoryMinistries,
			Country:         "United Kingdom",
			Language:        "English",
			MemberCount:     32,
			DiscussionCount: 8,
			CreatedAt:       day("2024-01-20"),
			CreatedBy:       "admin",
		},
		{
			ID:              "4",
			Title:           "Christian Parenting",
			Description:     "A supportive community for parents raising children in faith. Share experiences and learn from one another.",
			Image:           "https://images.unsplash.com/photo-1511895426328-dc8714191300?w=400&h=300&fit=crop",
			Category:        models.CategoryForums,
			Country:         "Australia",
			Language:        "English",
			MemberCount:     67,
			DiscussionCount: 19,
			CreatedAt:       day("2024-01-05"),
			CreatedBy:       "admin",
		},
		{
			ID:              "5",
			Title:           "Worship Team",
			Description:     "For musicians, singers, and worship leaders. Share resources and coordinate ministry opportunities.",
			Image:           "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=400&h=300&fit=crop",
			Category:        models.CategoryMinistries,
			Country:         "United States",
			Language:        "English",
			MemberCount:     23,
			DiscussionCount: 6,
			CreatedAt:       day("2024-01-12"),
			CreatedBy:       "admin",
		},
		{
			ID:              "6",
			Title:           "Christian Business Network",
			Description:     "Connect with fellow Christian entrepreneurs and professionals in faith-based business practices.",
			Image:           "https://images.unsplash.com/photo-1556761175-b413da4baf72?w=400&h=300&fit=crop",
			Category:        models.CategoryForums,
			Country:         "Canada",
			Language:        "English",
			MemberCount:     89,
			DiscussionCount: 31,
			CreatedAt:       day("2024-01-08"),
			CreatedBy:       "admin",
		},
		{
			ID:              "7",
			Title:           "Ministère de la Jeunesse",
			Description:     "Une communauté vibrante pour les jeunes qui grandissent dans la foi.",
			Image:           "https://images.unsplash.com/photo-1522202176988-66273c2fd55f?w=400&h=300&fit=crop",
			Category:        models.CategoryMinistries,
			Country:         "France",
			Language:        "French",
			MemberCount:     38,
			DiscussionCount: 9,
			CreatedAt:       day("2024-01-18"),
			CreatedBy:       "admin",
		},
		{
			ID:              "8",
			Title:           "Ministerio de Jóvenes",
			Description:     "Una comunidad vibrante para jóvenes que crecen en la fe.",
			Image:           "https://images.unsplash.com/photo-1522202176988-66273c2fd55f?w=400&h=300&fit=crop",
			Category:        models.CategoryMinistries,
			Country:         "Spain",
			Language:        "Spanish",
			MemberCount:     42,
			DiscussionCount: 11,
			CreatedAt:       day("2024-01-22"),
			CreatedBy:       "admin",
		},
	}

	docs := make([]any, len(groups))
	for i, g := range groups {
		docs[i] = g
	}
	if err := insertAll(ctx, db, "groups", docs); err != nil {
		return err
	}
	logger.Info("seeded sample groups", zap.Int("count", len(groups)))
	return nil
}

func seedDiscussions(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	empty, err := isEmpty(ctx, db, "discussions")
	if err != nil || !empty {
		return err
	}

	discussions := []models.Discussion{
		{
			ID:         "1",
			GroupID:    "1",
			Title:      "Upcoming Youth Retreat Planning",
			Content:    "Let's discuss the details for our upcoming youth retreat. What activities should we include?",
			AuthorID:   "user1",
			AuthorName: "Sarah Johnson",
			CreatedAt:  day("2024-01-25"),
			ReplyCount: 5,
		},
		{
			ID:         "2",
			GroupID:    "1",
			Title:      "Weekly Bible Study Topics",
			Content:    "What topics would you like to explore in our weekly Bible study sessions?",
			AuthorID:   "user2",
			AuthorName: "Mike Chen",
			CreatedAt:  day("2024-01-26"),
			ReplyCount: 3,
		},
		{
			ID:         "3",
			GroupID:    "2",
			Title:      "Prayer Request: Family Health",
			Content:    "Please pray for my family as we're going through some health challenges.",
			AuthorID:   "user3",
			AuthorName: "Lisa Rodriguez",
			CreatedAt:  day("2024-01-24"),
			ReplyCount: 8,
		},
	}

	replies := []models.Reply{
		{
			ID:           "1",
			DiscussionID: "1",
			Content:      "I think we should include team building activities and worship sessions.",
			AuthorID:     "user4",
			AuthorName:   "David Wilson",
			CreatedAt:    day("2024-01-25").Add(10*time.Hour + 30*time.Minute),
		},
		{
			ID:           "2",
			DiscussionID: "1",
			Content:      "Great idea! We could also add some outdoor activities if weather permits.",
			AuthorID:     "user5",
			AuthorName:   "Emily Brown",
			CreatedAt:    day("2024-01-25").Add(11*time.Hour + 15*time.Minute),
		},
	}

	docs := make([]any, len(discussions))
	for i, d := range discussions {
		docs[i] = d
	}
	if err := insertAll(ctx, db, "discussions", docs); err != nil {
		return err
	}

	docs = make([]any, len(replies))
	for i, r := range replies {
		docs[i] = r
	}
	if err := insertAll(ctx, db, "replies", docs); err != nil {
		return err
	}

	logger.Info("seeded sample discussions",
		zap.Int("discussions", len(discussions)), zap.Int("replies", len(replies)))
	return nil
}

func seedCourse(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	empty, err := isEmpty(ctx, db, "courses")
	if err != nil || !empty {
		return err
	}

	now := time.Now().UTC()
	course := models.Course{
		ID:          "react-native-basics",
		Title:       "React Native Fundamentals",
		Description: "Learn the basics of React Native development with hands-on examples and real-world projects.",
		Thumbnail:   "https://img.youtube.com/vi/CGbNw855ksw/maxresdefault.jpg",
		Instructor:  "John Doe",
		Category:    "Mobile Development",
		Difficulty:  models.DifficultyBeginner,
		Videos: []models.CourseVideo{
			{
				ID:          "intro",
				Title:       "Introduction to React Native",
				Description: "Welcome to React Native! Learn what React Native is and why it's powerful for mobile development.",
				VideoURL:    "https://www.youtube.com/watch?v=CGbNw855ksw",
				Duration:    600,
				Thumbnail:   "https://img.youtube.com/vi/CGbNw855ksw/maxresdefault.jpg",
			},
			{
				ID:          "setup",
				Title:       "Setting Up Your Development Environment",
				Description: "Step-by-step guide to setting up React Native on your machine.",
				VideoURL:    "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
				Duration:    900,
				Thumbnail:   "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg",
			},
			{
				ID:          "components",
				Title:       "Understanding Components",
				Description: "Learn about React components and how they work in React Native.",
				VideoURL:    "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
				Duration:    1200,
				Thumbnail:   "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg",
			},
		},
		TotalDuration: 2700,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	quiz := models.Quiz{
		ID:       "react-native-basics-quiz",
		CourseID: course.ID,
		Questions: []models.QuizQuestion{
			{
				ID:       "q1",
				Question: "What is React Native?",
				Options: []string{
					"A JavaScript library for building user interfaces",
					"A framework for building native mobile apps using JavaScript",
					"A database management system",
					"A programming language",
				},
				CorrectAnswer: 1,
				Explanation:   "React Native is a framework that allows you to build native mobile applications using JavaScript and React.",
			},
			{
				ID:       "q2",
				Question: "Which of the following is NOT a core component in React Native?",
				Options:  []string{"View", "Text", "Button", "div"},
				CorrectAnswer: 3,
				Explanation:   "div is an HTML element, not a React Native component. React Native uses View instead.",
			},
			{
				ID:       "q3",
				Question: "What command is used to create a new React Native project?",
				Options: []string{
					"npx create-react-native-app",
					"npx react-native init",
					"npx create-react-app",
					"npx expo init",
				},
				CorrectAnswer: 1,
				Explanation:   "npx react-native init is the command to create a new React Native project.",
			},
		},
		PassingScore: 70,
	}

	if _, err := db.Collection("courses").InsertOne(ctx, course); err != nil {
		return err
	}
	if _, err := db.Collection("quizzes").InsertOne(ctx, quiz); err != nil {
		return err
	}
	logger.Info("seeded sample course and quiz", zap.String("course_id", course.ID))
	return nil
}

func seedVideos(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	empty, err := isEmpty(ctx, db, "videos")
	if err != nil || !empty {
		return err
	}

	videos := []models.WatchVideo{
		{
			ID:           "1",
			Title:        "React Native Tutorial for Beginners",
			Description:  "Learn React Native from scratch with this comprehensive tutorial.",
			ThumbnailURL: "https://img.youtube.com/vi/CGbNw855ksw/maxresdefault.jpg",
			Channel:      "Programming Hub",
			Duration:     "15:30",
			VideoURL:     "https://www.youtube.com/watch?v=CGbNw855ksw",
		},
		{
			ID:           "2",
			Title:        "JavaScript ES6+ Features Explained",
			Description:  "Modern JavaScript features that every developer should know.",
			ThumbnailURL: "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg",
			Channel:      "Code Masters",
			Duration:     "22:15",
			VideoURL:     "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		},
		{
			ID:           "3",
			Title:        "Flutter vs React Native Comparison",
			Description:  "Which framework should you choose for mobile development?",
			ThumbnailURL: "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg",
			Channel:      "Tech Talk",
			Duration:     "18:45",
			VideoURL:     "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		},
	}

	docs := make([]any, len(videos))
	for i, v := range videos {
		v.TitleCI = text.Fold(v.Title)
		docs[i] = v
	}
	if err := insertAll(ctx, db, "videos", docs); err != nil {
		return err
	}
	logger.Info("seeded sample watch videos", zap.Int("count", len(videos)))
	return nil
}
