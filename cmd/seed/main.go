// Command seed fills the configured database with a demo account.
//
// It reads the same configuration as the server and signs in with
// test@example.com / password. Running it twice is a no-op.
package main

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/service"
	"github.com/MKhiriev/go-notes/internal/store"
	"github.com/MKhiriev/go-notes/internal/utils"
	"github.com/MKhiriev/go-notes/models"
)

const (
	demoEmail    = "test@example.com"
	demoPassword = "password"
)

type demoFolder struct {
	name  string
	color string
}

type demoNote struct {
	title   string
	content string
	folder  string
	pinned  bool
}

var demoFolders = []demoFolder{
	{name: "Work", color: "#007AFF"},
	{name: "Personal", color: "#34C759"},
	{name: "Ideas", color: "#AF52DE"},
}

var demoNotes = []demoNote{
	{
		title:   "Meeting Notes - Q4 Planning",
		content: "<h2>Q4 Planning Meeting</h2><h3>Agenda:</h3><ul><li>Review Q3 performance</li><li>Set Q4 goals</li><li>Budget allocation</li></ul><p><em>Action items will be sent out by EOD.</em></p>",
		folder:  "Work",
		pinned:  true,
	},
	{
		title:   "Project Ideas",
		content: "<h2>New Project Ideas</h2><ol><li><strong>AI-powered note organizer</strong></li><li><strong>Voice-to-text integration</strong></li><li><strong>Collaborative notebooks</strong></li></ol>",
		folder:  "Ideas",
	},
	{
		title:   "Weekend Plans",
		content: "<h2>Weekend To-Do</h2><h3>Saturday:</h3><ul><li>Grocery shopping</li><li>Farmer's market</li></ul><h3>Sunday:</h3><ul><li>Brunch</li><li>Read a book in the park</li></ul>",
		folder:  "Personal",
	},
	{
		title:   "Book Recommendations",
		content: "<h2>Must-Read Books</h2><ul><li><strong>Klara and the Sun</strong> by Kazuo Ishiguro</li><li><strong>Atomic Habits</strong> by James Clear</li><li><strong>Sapiens</strong> by Yuval Noah Harari</li></ul>",
		folder:  "Personal",
	},
	{
		title:   "Recipe: Chocolate Chip Cookies",
		content: "<h2>Chocolate Chip Cookies</h2><ol><li>Preheat oven to 375F</li><li>Cream butter and sugars</li><li>Fold in chocolate chips</li><li>Bake for 9-11 minutes</li></ol>",
		folder:  "Personal",
	},
	{
		content: "Quick thought: maybe we should implement dark mode for the entire application. Users seem to prefer it for note-taking apps.",
	},
}

func main() {
	log := logger.NewLogger("go-notes-seed")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if err = seed(ctx, services, storages, log); err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Info().Str("email", demoEmail).Msg("demo user already exists, nothing to do")
			return
		}
		log.Fatal().Err(err).Msg("seeding failed")
	}

	log.Info().Str("email", demoEmail).Msg("demo data created")
}

func seed(ctx context.Context, services *service.Services, storages *store.Storages, log *logger.Logger) error {
	user, err := services.AuthService.RegisterUser(ctx, models.Credentials{
		Email:    demoEmail,
		Name:     "Test User",
		Password: demoPassword,
	})
	if err != nil {
		return err
	}

	folderIDs := make(map[string]int64, len(demoFolders))
	for i, f := range demoFolders {
		sortOrder := i + 1
		folder, err := services.FolderService.CreateFolder(ctx, models.CreateFolderRequest{
			UserID:    user.UserID,
			Name:      f.name,
			Color:     f.color,
			SortOrder: &sortOrder,
		})
		if err != nil {
			return err
		}
		folderIDs[f.name] = folder.ID
	}

	var first models.Note
	for i, n := range demoNotes {
		request := models.CreateNoteRequest{
			UserID:   user.UserID,
			Content:  &n.content,
			IsPinned: &n.pinned,
		}
		if n.title != "" {
			request.Title = &n.title
		}
		if id, ok := folderIDs[n.folder]; ok {
			request.FolderID = &id
		}

		note, err := services.NoteService.CreateNote(ctx, request)
		if err != nil {
			return err
		}
		if i == 0 {
			first = note
		}
	}

	attachment, err := attachAgenda(ctx, storages, first.ID)
	if err != nil {
		return err
	}
	log.Debug().Int64("note_id", first.ID).Str("path", attachment.FilePath).Msg("attachment stored")

	return nil
}

// attachAgenda stores a small text file and links it to noteID.
func attachAgenda(ctx context.Context, storages *store.Storages, noteID int64) (models.NoteAttachment, error) {
	const original = "agenda.txt"
	body := "Q4 planning\n- Review Q3 performance\n- Set Q4 goals\n- Budget allocation\n"

	filename := utils.NewUUIDGenerator().GenerateFilename(original)
	filePath := models.AttachmentsPrefix + "/" + filename

	size, err := storages.AttachmentFiles.Save(ctx, filePath, strings.NewReader(body))
	if err != nil {
		return models.NoteAttachment{}, err
	}

	now := time.Now().UTC()
	return storages.AttachmentRepository.CreateAttachment(ctx, models.NoteAttachment{
		NoteID:           noteID,
		Filename:         filename,
		OriginalFilename: original,
		MimeType:         "text/plain",
		FileSize:         size,
		FilePath:         filePath,
		CreatedAt:        now,
		UpdatedAt:        now,
	})
}
