package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/bernd/poddash/config"
	"github.com/bernd/poddash/fileserver"
	"github.com/bernd/poddash/pod"
	"github.com/bernd/poddash/sshsetup"
	"github.com/bernd/poddash/tui"
)

// RunDashboard loads the config, takes over the terminal and runs the menu
// until the user exits.
func RunDashboard(ctx context.Context) error {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return err
	}

	term, err := tui.NewTerminal(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	d := newDashboard(cfg, pod.EnvSource{})
	d.startFileServer()

	restore, err := term.Enter()
	if err != nil {
		return err
	}
	defer restore()

	return tui.NewNavigator(term, d.rootScreen(ctx)).Run(ctx)
}

type dashboard struct {
	cfg     *config.Config
	catalog *pod.Catalog
	source  pod.Source
	ssh     sshsetup.Options

	// fileServerPort is non-zero once the zero-GPU file server runs.
	fileServerPort int
	fileServerErr  error

	// status reports progress before the dashboard takes over the screen.
	status func(verb, format string, args ...any)
}

func newDashboard(cfg *config.Config, source pod.Source) *dashboard {
	return &dashboard{
		cfg:     cfg,
		catalog: pod.NewCatalog(),
		source:  source,
		ssh:     sshsetup.OptionsFromConfig(cfg.SSH),
		status:  tui.Status,
	}
}

func (d *dashboard) snapshot() pod.Snapshot {
	return pod.CaptureAll(d.source, d.catalog)
}

// startFileServer launches the detached file server when the pod reports
// zero GPUs and no server answers on the configured port yet.
func (d *dashboard) startFileServer() {
	if !d.snapshot().ZeroGPU() {
		return
	}
	fs := d.cfg.FileServer
	if fileserver.Running(fs.Port) {
		d.fileServerPort = fs.Port
		d.status("Reusing", "file server on port %d", fs.Port)
		return
	}
	pid, err := fileserver.Launch(fs)
	if err != nil {
		d.fileServerErr = err
		d.status("Failed", "to start file server: %v", err)
		return
	}
	d.fileServerPort = fs.Port
	d.status("Serving", "%s on port %d (pid %d, log %s)", fs.Dir, fs.Port, pid, fs.LogFile)
}

func (d *dashboard) rootScreen(ctx context.Context) *tui.MenuScreen {
	return tui.NewMenuScreen(d.cfg.Title, d.cfg.Tagline,
		tui.MenuItem{Label: pod.InfoTitle, Action: d.podInfo},
		tui.MenuItem{Label: sshsetup.SetupTitle, Action: func() tui.Nav { return d.sshSetup(ctx) }},
		tui.MenuItem{Label: sshsetup.ConnectionTitle, Action: d.connectionDetails},
		tui.MenuItem{Label: "Exit", Action: tui.Exit},
	)
}

func (d *dashboard) view(title, content string) tui.Nav {
	v := tui.NewViewer(title, content, tui.ClampScroll(d.cfg.ClampScroll))
	return tui.Push(tui.NewViewerScreen(v))
}

func (d *dashboard) podInfo() tui.Nav {
	return d.view(pod.InfoTitle, pod.Info(d.snapshot(), d.catalog))
}

func (d *dashboard) sshSetup(ctx context.Context) tui.Nav {
	// Step failures are part of the result text.
	res, _ := sshsetup.Setup(ctx, d.ssh, d.snapshot())
	return d.view(sshsetup.SetupTitle, res.Content())
}

func (d *dashboard) connectionDetails() tui.Nav {
	content := sshsetup.ConnectionDetails(d.snapshot(), sshsetup.ConnectionOptions{
		User:           d.ssh.User,
		PasswordFile:   d.ssh.PasswordFile,
		FileServerPort: d.fileServerPort,
	})
	if d.fileServerErr != nil {
		content += fmt.Sprintf("\n\nFile server failed to start: %v", d.fileServerErr)
	}
	return d.view(sshsetup.ConnectionTitle, content)
}
