package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	if a.hasRemote() {
		return fmt.Sprintf("(%s)", a.config.RemoteURL)
	}
	return "(local)"
}

func (a *App) Root(ctx context.Context) {

	fmt.Println("ui-gohan weekly planner (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	runREPL(ctx, a, a.getStatus, scanner)
}
