package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/mrunalid-blip/coursechat"
	main "github.com/mrunalid-blip/coursechat/cmd/coursechat"
	"github.com/mrunalid-blip/coursechat/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoursesCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints names and count", func(t *testing.T) {
		t.Parallel()

		catalog := mock.StaticCatalog(
			&coursechat.Course{Name: "Diploma in Cardiology"},
			&coursechat.Course{Name: "Pediatric Nutrition"},
		)

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Catalog: catalog,
		}

		cmd := &main.CoursesCmd{}
		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "Diploma in Cardiology")
		assert.Contains(t, output, "Pediatric Nutrition")
		assert.Contains(t, output, "2 courses")
	})

	t.Run("empty catalog prints a notice", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Catalog: mock.StaticCatalog(),
		}

		cmd := &main.CoursesCmd{}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No courses loaded.")
	})
}
