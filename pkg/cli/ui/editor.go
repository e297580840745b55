/* Copyright 2025 Gymplan Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package ui provides the user interface for the program
package ui

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/gymplan/gymplan/pkg/cli/consts"
	"github.com/gymplan/gymplan/pkg/cli/context"
	"github.com/gymplan/gymplan/pkg/cli/utils"
	"github.com/pkg/errors"
)

// GetTmpContentPath returns a path in the cache directory that does not exist
// yet, for a temporary file holding the description being edited
func GetTmpContentPath(ctx context.GymCtx) (string, error) {
	for i := 0; ; i++ {
		filename := fmt.Sprintf("%s_%d.%s", consts.TmpContentFileBase, i, consts.TmpContentFileExt)
		candidate := filepath.Join(ctx.Paths.Cache, consts.GymplanDirName, filename)

		ok, err := utils.FileExists(candidate)
		if err != nil {
			return "", errors.Wrapf(err, "checking if file exists at %s", candidate)
		}
		if !ok {
			return candidate, nil
		}
	}
}

// GetEditorCommand returns the system's editor command with appropriate flags,
// if necessary, to make the command wait until editor is close to exit.
func GetEditorCommand() string {
	editor := os.Getenv("EDITOR")

	switch editor {
	case "subl":
		return "subl -n -w"
	case "code":
		return "code -w"
	case "mate":
		return "mate -w"
	case "vim", "nvim", "nano", "emacs", "hx":
		return editor
	}

	return "vi"
}

func newEditorCmd(ctx context.GymCtx, fpath string) (*exec.Cmd, error) {
	editor := ctx.Editor
	if editor == "" {
		editor = GetEditorCommand()
	}

	args := strings.Fields(editor)
	if len(args) == 0 {
		return nil, errors.New("no editor is configured")
	}
	args = append(args, fpath)

	return exec.Command(args[0], args[1:]...), nil
}

// GetEditorInput writes the initial content to a temporary file, launches a
// text editor on it and returns the content once the editor exits
func GetEditorInput(ctx context.GymCtx, initial string) (string, error) {
	fpath, err := GetTmpContentPath(ctx)
	if err != nil {
		return "", errors.Wrap(err, "getting temporary file path")
	}

	if err := os.WriteFile(fpath, []byte(initial), 0644); err != nil {
		return "", errors.Wrap(err, "creating a temporary content file")
	}
	defer os.Remove(fpath)

	cmd, err := newEditorCmd(ctx, fpath)
	if err != nil {
		return "", errors.Wrap(err, "creating an editor command")
	}

	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return "", errors.Wrapf(err, "launching an editor")
	}

	if err := cmd.Wait(); err != nil {
		return "", errors.Wrap(err, "waiting for the editor")
	}

	b, err := os.ReadFile(fpath)
	if err != nil {
		return "", errors.Wrap(err, "reading the temporary content file")
	}

	return strings.TrimSpace(string(b)), nil
}
