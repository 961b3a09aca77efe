package main

import (
	"fmt"

	"github.com/mrunalid-blip/coursechat"
)

// Run executes the courses command.
func (c *CoursesCmd) Run(deps *Dependencies) error {
	names, err := deps.Catalog.CourseNames(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", coursechat.ErrorMessage(err))
		return err
	}

	if len(names) == 0 {
		fmt.Fprintln(deps.Stdout, "No courses loaded.")
		return nil
	}

	for _, name := range names {
		fmt.Fprintln(deps.Stdout, name)
	}
	fmt.Fprintf(deps.Stdout, "\n%d courses\n", len(names))
	return nil
}
