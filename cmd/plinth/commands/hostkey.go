package commands

import (
	"bufio"
	"encoding/base64"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/ssh"
	"golang.org/x/term"

	"plinth/internal/domain"
	"plinth/internal/logging"
)

func hostkeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hostkey",
		Short: "Query and extend the host key trust store",
	}
	cmd.AddCommand(hostkeyVerifyCmd(), hostkeyAddCmd(), hostkeyListCmd())
	return cmd
}

func hostkeyArgs(args []string) (hostname string, port int, keytype, keydata string, err error) {
	port, err = strconv.Atoi(args[1])
	if err != nil {
		return "", 0, "", "", fmt.Errorf("port %q is not a number", args[1])
	}
	return args[0], port, args[2], args[3], nil
}

func hostkeyVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <host> <port> <keytype> <keydata>",
		Short: "Check an offered key against the trust store",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			hostname, port, keytype, keydata, err := hostkeyArgs(args)
			if err != nil {
				return err
			}
			result, err := appCtx.HostKeys.Verify(hostname, port, keytype, keydata)
			if err != nil {
				return err
			}
			fmt.Println(result)
			if result == domain.TrustMismatch {
				return fmt.Errorf("stored key for %s:%d differs from the offered one", hostname, port)
			}
			return nil
		},
	}
}

func hostkeyAddCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "add <host> <port> <keytype> <keydata>",
		Short: "Record a host key, confirming replacements",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			hostname, port, keytype, keydata, err := hostkeyArgs(args)
			if err != nil {
				return err
			}
			result, err := appCtx.HostKeys.Verify(hostname, port, keytype, keydata)
			if err != nil {
				return err
			}
			switch result {
			case domain.TrustMatch:
				fmt.Println("already trusted")
				return nil
			case domain.TrustMismatch:
				logging.Warnf("recorded key for %s:%d differs from the offered one", hostname, port)
				if !force && !confirm("Replace the recorded key?") {
					return fmt.Errorf("refusing to record a changed key for %s:%d", hostname, port)
				}
			}
			if err := appCtx.HostKeys.Add(hostname, port, keytype, keydata); err != nil {
				return err
			}
			if fp := fingerprint(keydata); fp != "" {
				fmt.Printf("recorded %s key for %s:%d (%s)\n", keytype, hostname, port, fp)
			} else {
				fmt.Printf("recorded %s key for %s:%d\n", keytype, hostname, port)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "replace a changed key without asking")
	return cmd
}

func hostkeyListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print trust store entries in file order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := appCtx.HostKeys.Entries()
			if err != nil {
				return err
			}
			for _, e := range entries {
				if fp := fingerprint(e.KeyData); fp != "" {
					fmt.Printf("%s@%d:%s %s\n", e.Keytype, e.Port, e.Hostname, fp)
				} else {
					fmt.Printf("%s@%d:%s %s\n", e.Keytype, e.Port, e.Hostname, elide(e.KeyData, 40))
				}
			}
			return nil
		},
	}
}

// confirm asks the user a yes/no question when stdin is a terminal; a
// non-interactive run answers no, leaving --force as the only override.
func confirm(prompt string) bool {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false
	}
	fmt.Printf("%s [y/N] ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// fingerprint renders a SHA256 fingerprint for key blobs in SSH wire format
// (base64). The store treats key data as opaque, so anything else simply has
// no fingerprint.
func fingerprint(keydata string) string {
	raw, err := base64.StdEncoding.DecodeString(keydata)
	if err != nil {
		return ""
	}
	pub, err := ssh.ParsePublicKey(raw)
	if err != nil {
		return ""
	}
	return ssh.FingerprintSHA256(pub)
}

func elide(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
