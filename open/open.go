// Package open hands files to the platform's default handler or to a named application.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/storefront-cli/storefront/constant"
)

// File opens path with the default handler and waits for it to exit.
func File(path string) error {
	return FileWith(path, "")
}

// FileWith opens path with app, or with the default handler when app is empty.
func FileWith(path, app string) error {
	cmd, err := command(runtime.GOOS, path, app)
	if err != nil {
		return err
	}

	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	return cmd.Run()
}

func command(goos, path, app string) (*exec.Cmd, error) {
	if app != "" {
		switch goos {
		case constant.Windows:
			return exec.Command("cmd", "/C", "start", "", app, path), nil
		case constant.Darwin:
			return exec.Command("open", "-a", app, path), nil
		case constant.Linux, constant.Android:
			return exec.Command(app, path), nil
		}
	} else {
		switch goos {
		case constant.Windows:
			rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
			return exec.Command(rundll, "url.dll,FileProtocolHandler", path), nil
		case constant.Darwin:
			return exec.Command("open", path), nil
		case constant.Linux:
			return exec.Command("xdg-open", path), nil
		case constant.Android:
			return exec.Command("termux-open", path), nil
		}
	}

	return nil, fmt.Errorf("unsupported OS: %s", goos)
}
