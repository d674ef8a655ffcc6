package controllers

import (
	"database/sql/driver"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/gin-gonic/gin"
)

func newSpeakerRouter(spc *SpeakerController) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.DELETE("/api/admin/speakers/:id", spc.Delete)
	return router
}

func TestSpeakerDeleteRemovesRowAndImage(t *testing.T) {
	imagePath := filepath.Join(t.TempDir(), "speaker.jpg")
	if err := os.WriteFile(imagePath, []byte("jpeg bytes"), 0o644); err != nil {
		t.Fatalf("failed to stage image: %v", err)
	}

	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("FROM `speakers` WHERE id = "),
			args:    []driver.Value{int64(5)},
			columns: []string{"id", "name_en", "name_ar", "image_path"},
			rows: [][]driver.Value{
				{int64(5), "Dr. Rania Saleh", "د. رانيا صالح", imagePath},
			},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("^DELETE FROM `speakers` WHERE "),
			args:    []driver.Value{int64(5)},
			result:  scriptedResult{rowsAffected: 1},
		},
	}
	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	router := newSpeakerRouter(NewSpeakerController(db))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/admin/speakers/5", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	if _, err := os.Stat(imagePath); !os.IsNotExist(err) {
		t.Fatalf("stored image still present after delete (stat err %v)", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatal(err)
	}
}

func TestSpeakerDeleteWithoutImage(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("FROM `speakers` WHERE id = "),
			args:    []driver.Value{int64(6)},
			columns: []string{"id", "name_en", "name_ar", "image_path"},
			rows: [][]driver.Value{
				{int64(6), "Dr. Omar Aziz", "د. عمر عزيز", nil},
			},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("^DELETE FROM `speakers` WHERE "),
			args:    []driver.Value{int64(6)},
			result:  scriptedResult{rowsAffected: 1},
		},
	}
	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	router := newSpeakerRouter(NewSpeakerController(db))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/admin/speakers/6", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatal(err)
	}
}
