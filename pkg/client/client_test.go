package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamvt/thiepmoi/pkg/domain"
)

func testGraduate() domain.Graduate {
	return domain.Graduate{
		ID:           "g1",
		Name:         "Nguyễn Văn Minh",
		Degree:       "Bachelor",
		Department:   "Computer Science",
		GraduationAt: time.Date(2026, 6, 20, 9, 0, 0, 0, time.UTC),
		Venue:        domain.Venue{Name: "Hội trường A", Address: "1 Đại Cồ Việt"},
		Contact:      domain.Contact{Email: "minh@example.vn", Phone: "0901234567"},
	}
}

func TestVerifyInvitation(t *testing.T) {
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/invitations/verify", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(domain.VerifiedGuest{ //nolint:errcheck
			GraduateID: "g1",
			GuestName:  "Alice",
			Graduate:   testGraduate(),
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	guest, err := c.VerifyInvitation(context.Background(), "123456")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"invitation_code": "123456"}, gotBody)
	assert.Equal(t, "Alice", guest.GuestName)
	assert.Equal(t, "g1", guest.ChatTargetID())
	assert.Equal(t, "Nguyễn Văn Minh", guest.Graduate.Name)
}

func TestVerifyInvitationDetailError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Mã mời không tồn tại"}) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.VerifyInvitation(context.Background(), "999999")
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusNotFound))
	assert.Equal(t, "Mã mời không tồn tại", Detail(err))
}

func TestVerifyInvitationEmptyBodyError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.VerifyInvitation(context.Background(), "123456")
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusBadGateway))
	assert.Empty(t, Detail(err))
}

func TestChat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/graduates/g1/chat", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "Mấy giờ check-in?", body["message"])
		json.NewEncoder(w).Encode(map[string]string{"response": "Lễ bắt đầu lúc 9 giờ sáng."}) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL)
	reply, err := c.Chat(context.Background(), "g1", "Mấy giờ check-in?")
	require.NoError(t, err)
	assert.Equal(t, "Lễ bắt đầu lúc 9 giờ sáng.", reply)
}

func TestListGraduatesMongoIDAlias(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/graduates", r.URL.Path)
		// Simulate the raw-Mongo serialization path.
		io.WriteString(w, `[{"_id":"abc","name":"Lan","venue":{"name":"B1","address":"x"},`+ //nolint:errcheck
			`"contact":{"email":"lan@x.vn","phone":"090"},"graduation_datetime":"2026-06-20T09:00:00Z"}]`)
	}))
	defer srv.Close()

	c := New(srv.URL)
	grads, err := c.ListGraduates(context.Background())
	require.NoError(t, err)
	require.Len(t, grads, 1)
	assert.Equal(t, "abc", grads[0].ID)
}

func TestCreateGraduate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/graduates", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "Nguyễn Văn Minh", body["name"])
		json.NewEncoder(w).Encode(map[string]string{"graduate_id": "new-1"}) //nolint:errcheck
	}))
	defer srv.Close()

	g := testGraduate()
	c := New(srv.URL)
	id, err := c.CreateGraduate(context.Background(), CreateGraduateRequest{
		Name:         g.Name,
		Degree:       g.Degree,
		Department:   g.Department,
		GraduationAt: g.GraduationAt,
		Venue:        g.Venue,
		Contact:      g.Contact,
	})
	require.NoError(t, err)
	assert.Equal(t, "new-1", id)
}

func TestUploadPhoto(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grad.jpg")
	require.NoError(t, os.WriteFile(path, []byte("not-really-a-jpeg"), 0o644))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/graduates/g1/photos", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close() //nolint:errcheck
		assert.Equal(t, "grad.jpg", hdr.Filename)
		data, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, "not-really-a-jpeg", string(data))
		json.NewEncoder(w).Encode(map[string]string{"photo_url": "https://cdn.example/grad.jpg"}) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL)
	photoURL, err := c.UploadPhoto(context.Background(), "g1", path)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/grad.jpg", photoURL)
}

func TestUploadPhotoMissingFile(t *testing.T) {
	c := New("http://unused")
	_, err := c.UploadPhoto(context.Background(), "g1", filepath.Join(t.TempDir(), "nope.jpg"))
	require.Error(t, err)
}

func TestCreateInvitations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/invitations", r.URL.Path)
		var body struct {
			GraduateID string   `json:"graduate_id"`
			GuestNames []string `json:"guest_names"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "g1", body.GraduateID)
		require.Equal(t, []string{"Alice", "Bảo"}, body.GuestNames)
		json.NewEncoder(w).Encode(map[string]any{"invitations": []domain.Invitation{ //nolint:errcheck
			{Code: "123456", GraduateID: "g1", GuestName: "Alice"},
			{Code: "654321", GraduateID: "g1", GuestName: "Bảo"},
		}})
	}))
	defer srv.Close()

	c := New(srv.URL)
	invites, err := c.CreateInvitations(context.Background(), "g1", []string{"Alice", "Bảo"})
	require.NoError(t, err)
	require.Len(t, invites, 2)
	assert.Equal(t, "123456", invites[0].Code)
}

func TestListInvitationsFiltersByGraduate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/invitations", r.URL.Path)
		require.Equal(t, "g1", r.URL.Query().Get("graduate_id"))
		json.NewEncoder(w).Encode([]domain.Invitation{{Code: "111222", GraduateID: "g1", GuestName: "Chi"}}) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL)
	invites, err := c.ListInvitations(context.Background(), "g1")
	require.NoError(t, err)
	require.Len(t, invites, 1)
	assert.Equal(t, "Chi", invites[0].GuestName)
}
