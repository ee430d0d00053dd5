package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"toolbox/go-backend/internal/domains/imaging"
)

func fileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "file",
		Short: "Preview and convert data files",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "convert <path>",
		Short: "Convert CSV/XLSX/YAML/HCL to JSON or JSON to CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, content, err := readUpload(args[0])
			if err != nil {
				return err
			}
			result, err := svc.ConvertFile(name, content)
			if err != nil {
				return err
			}
			if err := saveDownload(cmd, result.Download); err != nil {
				return err
			}
			result.Download = nil
			return printJSON(cmd, result)
		},
	})
	return cmd
}

func qrCmd() *cobra.Command {
	var size int
	cmd := &cobra.Command{
		Use:   "qr <data>",
		Short: "Render data as a QR code PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := svc.QRCode(args[0], size)
			if err != nil {
				return err
			}
			return saveDownload(cmd, &result.Download)
		},
	}
	cmd.Flags().IntVar(&size, "size", imaging.DefaultQRSize, "image edge in pixels")
	return cmd
}

func imageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "image",
		Short: "Inspect images or render them as ASCII art",
	}
	var width int
	ascii := &cobra.Command{
		Use:   "ascii <path>",
		Short: "Render an image as ASCII art",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, content, err := readUpload(args[0])
			if err != nil {
				return err
			}
			art, err := svc.ImageToASCII(name, content, width)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), art.Text)
			return nil
		},
	}
	ascii.Flags().IntVar(&width, "width", imaging.DefaultASCIIWidth, "characters per line")

	info := &cobra.Command{
		Use:   "info <path>",
		Short: "Print image format and dimensions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, content, err := readUpload(args[0])
			if err != nil {
				return err
			}
			result, err := svc.PreviewImage(name, content)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %dx%d\n", result.Format, result.Width, result.Height)
			return nil
		},
	}
	cmd.AddCommand(ascii, info)
	return cmd
}

func pdfCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pdf <path>",
		Short: "Extract text from a PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, content, err := readUpload(args[0])
			if err != nil {
				return err
			}
			result, err := svc.ExtractPDFText(content)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Text)
			return nil
		},
	}
}

func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <url|multiaddr>",
		Short: "Fetch a URL and print the status and body preview",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := svc.HTTPGet(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "HTTP %d\n%s\n", result.StatusCode, result.Body)
			return nil
		},
	}
}

func deployCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "List or save deployment artifacts",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List available artifacts",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				for _, a := range svc.DeployArtifacts() {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", a.Name, a.Description)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "save <name>",
			Short: "Write an artifact into the output directory",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				artifact, err := svc.DeployArtifact(args[0])
				if err != nil {
					return err
				}
				return saveDownload(cmd, &artifact.Download)
			},
		},
	)
	return cmd
}
