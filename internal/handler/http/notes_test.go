package http

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-notes/internal/service"
	"github.com/MKhiriev/go-notes/internal/store"
	"github.com/MKhiriev/go-notes/internal/validators"
	"github.com/MKhiriev/go-notes/models"
)

var testFolders = []models.Folder{{ID: 3, UserID: 1, Name: "Work", Color: models.DefaultFolderColor}}

func TestListNotes(t *testing.T) {
	th := newTestHandler(t)
	folderID := int64(3)

	th.notes.EXPECT().ListNotes(gomock.Any(), models.NoteFilter{
		UserID: 1, Search: "meeting", FolderID: &folderID, Page: 2, PerPage: 10,
	}).Return(models.NewPage([]models.Note{{ID: 5, UserID: 1}}, 2, 10, 11), nil)
	th.folders.EXPECT().ListFolders(gomock.Any(), int64(1)).Return(testFolders, nil)

	rec := th.do(http.MethodGet, "/notes?search=meeting&folder=3&page=2&per_page=10", "", 1)

	p := decodePage(t, rec)
	assert.Equal(t, pageNotesIndex, p.Component)
	assert.Equal(t, "/notes?search=meeting&folder=3&page=2&per_page=10", p.URL)

	var props notesIndexProps
	decodeProps(t, p, &props)
	assert.Equal(t, 2, props.Notes.LastPage)
	assert.Equal(t, int64(11), props.Notes.Total)
	assert.Len(t, props.Folders, 1)
	assert.Equal(t, "meeting", props.Filters.Search)
	assert.Equal(t, &folderID, props.Filters.Folder)
}

func TestListNotes_SearchKeepsSpaces(t *testing.T) {
	th := newTestHandler(t)
	th.notes.EXPECT().ListNotes(gomock.Any(), models.NoteFilter{UserID: 1, Search: " meeting "}).
		Return(models.NewPage[models.Note](nil, 1, 20, 0), nil)
	th.folders.EXPECT().ListFolders(gomock.Any(), int64(1)).Return(nil, nil)

	p := decodePage(t, th.do(http.MethodGet, "/notes?search=%20meeting%20", "", 1))

	var props notesIndexProps
	decodeProps(t, p, &props)
	assert.Equal(t, " meeting ", props.Filters.Search)
}

func TestListNotes_InvalidFolderFilterIgnored(t *testing.T) {
	th := newTestHandler(t)
	th.notes.EXPECT().ListNotes(gomock.Any(), models.NoteFilter{UserID: 1}).Return(models.NewPage[models.Note](nil, 1, 20, 0), nil)
	th.folders.EXPECT().ListFolders(gomock.Any(), int64(1)).Return(nil, nil)

	rec := th.do(http.MethodGet, "/notes?folder=abc", "", 1)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateNotePage(t *testing.T) {
	th := newTestHandler(t)
	th.folders.EXPECT().ListFolders(gomock.Any(), int64(1)).Return(testFolders, nil)

	p := decodePage(t, th.do(http.MethodGet, "/notes/create?folder_id=3", "", 1))

	assert.Equal(t, pageNotesCreate, p.Component)
	var props noteFormProps
	decodeProps(t, p, &props)
	require.NotNil(t, props.SelectedFolder)
	assert.Equal(t, int64(3), *props.SelectedFolder)
}

func TestCreateNote(t *testing.T) {
	th := newTestHandler(t)
	th.notes.EXPECT().CreateNote(gomock.Any(), models.CreateNoteRequest{
		UserID:   1,
		Title:    ptr("Meeting"),
		Content:  ptr("<p>agenda</p>"),
		FolderID: ptr(int64(3)),
	}).Return(models.Note{ID: 42, UserID: 1}, nil)

	rec := th.do(http.MethodPost, "/notes", `{"title":"Meeting","content":"<p>agenda</p>","folder_id":3}`, 1)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/notes/42", rec.Header().Get("Location"))
}

func TestCreateNote_ValidationFailed(t *testing.T) {
	th := newTestHandler(t)
	fieldErrors := validators.NewFieldError(validators.FieldFolderID, validators.MsgInvalidFolder)
	th.notes.EXPECT().CreateNote(gomock.Any(), gomock.Any()).
		Return(models.Note{}, fmt.Errorf("error during note validation before saving: %w", fieldErrors))

	rec := th.do(http.MethodPost, "/notes", `{"content":"x","folder_id":99}`, 1)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"errors":{"folder_id":"The selected folder is invalid."}}`, rec.Body.String())
}

func TestShowNote(t *testing.T) {
	th := newTestHandler(t)
	note := models.Note{ID: 7, UserID: 1, Content: "x", Attachments: []models.NoteAttachment{{ID: 1, NoteID: 7}}}
	th.notes.EXPECT().GetNote(gomock.Any(), int64(7), int64(1)).Return(note, nil)
	th.folders.EXPECT().ListFolders(gomock.Any(), int64(1)).Return(testFolders, nil)

	p := decodePage(t, th.do(http.MethodGet, "/notes/7", "", 1))

	assert.Equal(t, pageNotesShow, p.Component)
	var props noteProps
	decodeProps(t, p, &props)
	assert.Equal(t, int64(7), props.Note.ID)
	assert.Len(t, props.Note.Attachments, 1)
	assert.Len(t, props.Folders, 1)
}

func TestEditNotePage(t *testing.T) {
	th := newTestHandler(t)
	th.notes.EXPECT().GetNote(gomock.Any(), int64(7), int64(1)).Return(models.Note{ID: 7, UserID: 1}, nil)
	th.folders.EXPECT().ListFolders(gomock.Any(), int64(1)).Return(testFolders, nil)

	p := decodePage(t, th.do(http.MethodGet, "/notes/7/edit", "", 1))
	assert.Equal(t, pageNotesEdit, p.Component)
}

func TestShowNote_Errors(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		serviceErr error
		wantStatus int
	}{
		{name: "foreign note", path: "/notes/7", serviceErr: service.ErrForbidden, wantStatus: http.StatusForbidden},
		{name: "missing note", path: "/notes/7", serviceErr: store.ErrNoteNotFound, wantStatus: http.StatusNotFound},
		{name: "non numeric id", path: "/notes/abc", wantStatus: http.StatusNotFound},
		{name: "zero id", path: "/notes/0", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandler(t)
			if tt.serviceErr != nil {
				th.notes.EXPECT().GetNote(gomock.Any(), int64(7), int64(1)).Return(models.Note{}, tt.serviceErr)
			}

			rec := th.do(http.MethodGet, tt.path, "", 1)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.NotContains(t, rec.Body.String(), "content")
		})
	}
}

func TestUpdateNote(t *testing.T) {
	th := newTestHandler(t)
	th.notes.EXPECT().UpdateNote(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, request models.UpdateNoteRequest) (models.Note, error) {
			assert.Equal(t, int64(7), request.ID)
			assert.Equal(t, int64(1), request.UserID)
			assert.True(t, request.FolderID.Set)
			assert.Nil(t, request.FolderID.Value)
			assert.False(t, request.Title.Set)
			require.NotNil(t, request.IsPinned)
			assert.True(t, *request.IsPinned)
			return models.Note{ID: 7, UserID: 1, IsPinned: true}, nil
		})
	th.folders.EXPECT().ListFolders(gomock.Any(), int64(1)).Return(testFolders, nil)

	p := decodePage(t, th.do(http.MethodPut, "/notes/7", `{"folder_id":null,"is_pinned":true}`, 1))

	assert.Equal(t, pageNotesShow, p.Component)
	var props noteProps
	decodeProps(t, p, &props)
	assert.True(t, props.Note.IsPinned)
}

func TestUpdateNote_ClearTitle(t *testing.T) {
	th := newTestHandler(t)
	th.notes.EXPECT().UpdateNote(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, request models.UpdateNoteRequest) (models.Note, error) {
			assert.True(t, request.Title.Set)
			assert.Nil(t, request.Title.Value)
			assert.False(t, request.FolderID.Set)
			return models.Note{ID: 7, UserID: 1}, nil
		})
	th.folders.EXPECT().ListFolders(gomock.Any(), int64(1)).Return(testFolders, nil)

	p := decodePage(t, th.do(http.MethodPut, "/notes/7", `{"title":null}`, 1))

	assert.Equal(t, pageNotesShow, p.Component)
}

func TestUpdateNote_Forbidden(t *testing.T) {
	th := newTestHandler(t)
	th.notes.EXPECT().UpdateNote(gomock.Any(), gomock.Any()).Return(models.Note{}, service.ErrForbidden)

	rec := th.do(http.MethodPut, "/notes/7", `{"title":"mine now"}`, 1)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"message":"Forbidden"}`, rec.Body.String())
}

func TestDeleteNote(t *testing.T) {
	th := newTestHandler(t)
	th.notes.EXPECT().SoftDeleteNote(gomock.Any(), int64(7), int64(1)).Return(nil)

	rec := th.do(http.MethodDelete, "/notes/7", "", 1)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/notes", rec.Header().Get("Location"))
}

func TestDeleteNote_Forbidden(t *testing.T) {
	th := newTestHandler(t)
	th.notes.EXPECT().SoftDeleteNote(gomock.Any(), int64(7), int64(1)).Return(service.ErrForbidden)

	rec := th.do(http.MethodDelete, "/notes/7", "", 1)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
