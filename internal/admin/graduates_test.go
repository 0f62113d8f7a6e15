package admin

import (
	"strings"
	"testing"
	"time"

	"github.com/lamvt/thiepmoi/pkg/client"
	"github.com/lamvt/thiepmoi/pkg/domain"
)

func newTestGraduatesModel() graduatesModel {
	m := newGraduatesModel(client.New("http://localhost:0"), testLocalizer())
	m.width = 80
	m.height = 30
	return m
}

func TestGraduatesEmptyStateRendered(t *testing.T) {
	m := newTestGraduatesModel()
	if !strings.Contains(m.View(), m.loc.T("admin.empty_graduates")) {
		t.Errorf("expected empty state, got:\n%s", m.View())
	}
}

func TestGraduatesLoadFailureShowsEmptyState(t *testing.T) {
	m := newTestGraduatesModel()
	m.graduates = []domain.Graduate{{ID: "g1", Name: "An"}}
	m, _ = m.Update(graduatesLoadedMsg{err: &client.HTTPError{StatusCode: 500}})
	if !strings.Contains(m.View(), m.loc.T("admin.empty_graduates")) {
		t.Errorf("expected empty state after a failed load, got:\n%s", m.View())
	}
}

func TestGraduatesLoadedRendersRoster(t *testing.T) {
	m := newTestGraduatesModel()
	m, _ = m.Update(graduatesLoadedMsg{graduates: []domain.Graduate{
		{ID: "g1", Name: "Nguyễn Văn A", Degree: "Kỹ sư", GraduationAt: time.Now()},
		{ID: "g2", Name: "Trần Thị B", Degree: "Cử nhân", GraduationAt: time.Now()},
	}})
	view := m.View()
	if !strings.Contains(view, "Nguyễn Văn A") || !strings.Contains(view, "Trần Thị B") {
		t.Errorf("expected both graduates listed, got:\n%s", view)
	}
}

func TestGraduatesPhotoCountLocalized(t *testing.T) {
	m := newTestGraduatesModel()
	m, _ = m.Update(graduatesLoadedMsg{graduates: []domain.Graduate{
		{ID: "g1", Name: "An", GraduationAt: time.Now(), PhotoURLs: []string{"u1", "u2"}},
	}})
	view := m.View()
	want := m.loc.TData("admin.photo_count", map[string]any{"Count": 2})
	if !strings.Contains(view, want) {
		t.Errorf("expected %q in view, got:\n%s", want, view)
	}
}

func TestGraduateFormRequiresName(t *testing.T) {
	m := newTestGraduatesModel().openForm()
	m, cmd := m.save()
	if cmd != nil {
		t.Error("expected no request without a name")
	}
	if m.status != m.loc.T("admin.name_required") {
		t.Errorf("expected name-required status, got %q", m.status)
	}
}

func TestGraduateFormRejectsBadDatetime(t *testing.T) {
	m := newTestGraduatesModel().openForm()
	m.inputs[fieldName].SetValue("An")
	m.inputs[fieldDatetime].SetValue("someday")
	m, cmd := m.save()
	if cmd != nil {
		t.Error("expected no request with an unparseable time")
	}
	if !strings.Contains(m.status, dateLayout) {
		t.Errorf("expected the expected layout in the status, got %q", m.status)
	}
}

func TestGraduateFormValidSubmitEntersSaving(t *testing.T) {
	m := newTestGraduatesModel().openForm()
	m.inputs[fieldName].SetValue("An")
	m.inputs[fieldDatetime].SetValue("20/11/2025 08:30")
	m, cmd := m.save()
	if cmd == nil {
		t.Fatal("expected a save command")
	}
	if m.state != gSaving {
		t.Errorf("expected saving state, got %d", m.state)
	}
}

func TestGraduateSavedReturnsToListAndReloads(t *testing.T) {
	m := newTestGraduatesModel()
	m.state = gSaving
	m, cmd := m.Update(graduateSavedMsg{id: "g9", name: "An"})
	if m.state != gListing {
		t.Errorf("expected listing state after save, got %d", m.state)
	}
	if cmd == nil {
		t.Error("expected a reload command")
	}
	if !strings.Contains(m.status, "An") {
		t.Errorf("expected created status naming the graduate, got %q", m.status)
	}
}

func TestGraduateSaveErrorReopensForm(t *testing.T) {
	m := newTestGraduatesModel().openForm()
	m.state = gSaving
	m, _ = m.Update(graduateSavedMsg{err: &client.HTTPError{StatusCode: 422, Detail: "tên quá dài"}})
	if m.state != gAdding {
		t.Errorf("expected form reopened on error, got state %d", m.state)
	}
	if m.status != "tên quá dài" {
		t.Errorf("expected server detail in status, got %q", m.status)
	}
}

func TestGraduateSavedReportsFailedUploads(t *testing.T) {
	m := newTestGraduatesModel()
	m.state = gSaving
	m, _ = m.Update(graduateSavedMsg{id: "g9", name: "An", attached: 1, failed: []string{"a.jpg", "b.jpg"}})
	if !strings.Contains(m.status, "a.jpg") || !strings.Contains(m.status, "b.jpg") {
		t.Errorf("expected failed files in status, got %q", m.status)
	}
}

func TestSplitPathsDropsBlanks(t *testing.T) {
	paths := splitPaths(" a.jpg , , b.png ,")
	if len(paths) != 2 || paths[0] != "a.jpg" || paths[1] != "b.png" {
		t.Errorf("unexpected paths: %v", paths)
	}
	if splitPaths("   ") != nil {
		t.Error("expected no paths from blank input")
	}
}

func TestGraduateFormEnterAdvancesThenSubmits(t *testing.T) {
	m := newTestGraduatesModel().openForm()
	m, _ = m.handleFormKey(keyEnter())
	if m.focus != fieldDegree {
		t.Errorf("expected enter to advance focus, got %d", m.focus)
	}
	m.inputs[fieldName].SetValue("An")
	m.inputs[fieldDatetime].SetValue("20/11/2025 08:30")
	m = m.setFocus(fieldCount - 1)
	m, cmd := m.handleFormKey(keyEnter())
	if cmd == nil {
		t.Error("expected submit from the last field")
	}
}
