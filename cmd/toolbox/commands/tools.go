package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"toolbox/go-backend/internal/domains/fakedata"
	"toolbox/go-backend/internal/domains/randgen"
)

func overviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Show the tool menu and any disabled features",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd, svc.Overview())
		},
	}
}

func calcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc <expression>",
		Short: "Evaluate an arithmetic expression",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := svc.Evaluate(strings.Join(args, " "))
			fmt.Fprintln(cmd.OutOrStdout(), result.Result)
			if !result.OK {
				return fmt.Errorf("calc: %s", result.Result)
			}
			return nil
		},
	}
}

// convert <category> <value> <from> <to>; category "temperature" uses C, F and K.
func convertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <category> <value> <from> <to>",
		Short: "Convert a value between units",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := parseFloatArg("value", args[1])
			if err != nil {
				return err
			}
			if strings.EqualFold(args[0], "temperature") {
				result, err := svc.ConvertTemperature(value, args[2], args[3])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), result.Text)
				return nil
			}
			result, err := svc.ConvertUnits(args[0], value, args[2], args[3])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Text)
			return nil
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List unit categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd, svc.UnitCategories())
		},
	})
	return cmd
}

func randomCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate passwords, identifiers and secrets",
	}

	var (
		length                      int
		noUpper, noDigits, noSymbol bool
	)
	password := &cobra.Command{
		Use:   "password",
		Short: "Generate a password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := svc.GeneratePassword(length, !noUpper, !noDigits, !noSymbol)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v.Value)
			return nil
		},
	}
	password.Flags().IntVarP(&length, "length", "l", randgen.DefaultPasswordLength, "password length")
	password.Flags().BoolVar(&noUpper, "no-uppercase", false, "exclude uppercase letters")
	password.Flags().BoolVar(&noDigits, "no-digits", false, "exclude digits")
	password.Flags().BoolVar(&noSymbol, "no-symbols", false, "exclude symbols")

	var tokenBytes int
	token := &cobra.Command{
		Use:   "token",
		Short: "Generate a URL-safe base64 token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := svc.GenerateToken(tokenBytes)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v.Value)
			return nil
		},
	}
	token.Flags().IntVar(&tokenBytes, "bytes", randgen.DefaultTokenBytes, "random bytes before encoding")

	var (
		strLength int
		charset   string
	)
	str := &cobra.Command{
		Use:   "string",
		Short: "Generate a random string from a charset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := svc.GenerateString(strLength, charset)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v.Value)
			return nil
		},
	}
	str.Flags().IntVarP(&strLength, "length", "l", randgen.DefaultStringLength, "string length")
	str.Flags().StringVar(&charset, "charset", randgen.DefaultCharset, "characters to draw from")

	var bits int
	mnemonic := &cobra.Command{
		Use:   "mnemonic",
		Short: "Generate a BIP-39 mnemonic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := svc.GenerateMnemonic(bits)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v.Value)
			return nil
		},
	}
	mnemonic.Flags().IntVar(&bits, "bits", randgen.DefaultMnemonicBits, "entropy bits (128-256, multiple of 32)")

	uuidCmd := &cobra.Command{
		Use:   "uuid",
		Short: "Generate a UUIDv4",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := svc.GenerateUUID()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v.Value)
			return nil
		},
	}

	cmd.AddCommand(password, token, str, mnemonic, uuidCmd)
	return cmd
}

// encode <base64|base58|lz4> <encode|decode> <text>
func encodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <base64|base58|lz4> <encode|decode> <text>",
		Short: "Encode or decode text",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				out any
				err error
			)
			switch strings.ToLower(args[0]) {
			case "base64":
				out, err = svc.Base64(args[1], args[2])
			case "base58":
				out, err = svc.Base58(args[1], args[2])
			case "lz4":
				out, err = svc.LZ4(args[1], args[2])
			default:
				return fmt.Errorf("unknown codec %q", args[0])
			}
			if err != nil {
				return err
			}
			return printJSON(cmd, out)
		},
	}
}

func hashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash <algorithm> <text>",
		Short: "Hash text (md5, sha1, sha256, sha512, sha3-256, blake2b-256)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := svc.Hash(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Digest)
			return nil
		},
	}
}

func textCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "text",
		Short: "Transform or count text",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "transform <action> <text>",
			Short: "Apply upper, lower, title, trim_blank_lines, nfc or nfkc",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				result, err := svc.TransformText(args[0], args[1])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), result.Text)
				return nil
			},
		},
		&cobra.Command{
			Use:   "count <text>",
			Short: "Count words and characters",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return printJSON(cmd, svc.CountText(args[0]))
			},
		},
	)
	return cmd
}

func dateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "date",
		Short: "Date arithmetic",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "diff <a> <b>",
			Short: "Days between two YYYY-MM-DD dates",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				result, err := svc.DateDiff(args[0], args[1])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), result.Days)
				return nil
			},
		},
		&cobra.Command{
			Use:   "add <date> <days>",
			Short: "Shift a date by a number of days",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				days, err := parseIntArg("days", args[1])
				if err != nil {
					return err
				}
				result, err := svc.DateAdd(args[0], days)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), result.Result)
				return nil
			},
		},
	)
	return cmd
}

func colorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "color",
		Short: "Convert between HEX and RGB",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "rgb <hex>",
			Short: "Convert #RRGGBB to RGB",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := svc.HexToRGB(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d %d %d\n", c.R, c.G, c.B)
				return nil
			},
		},
		&cobra.Command{
			Use:   "hex <r> <g> <b>",
			Short: "Convert RGB components to #RRGGBB",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				var rgb [3]int
				for i, name := range []string{"r", "g", "b"} {
					v, err := parseIntArg(name, args[i])
					if err != nil {
						return err
					}
					rgb[i] = v
				}
				c, err := svc.RGBToHex(rgb[0], rgb[1], rgb[2])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), c.Hex)
				return nil
			},
		},
	)
	return cmd
}

func fakeCmd() *cobra.Command {
	var (
		rows   int
		fields []string
	)
	cmd := &cobra.Command{
		Use:   "fake",
		Short: "Generate fake rows (name, email, address, phone)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := svc.GenerateFakeData(rows, fields)
			if err != nil {
				return err
			}
			return printJSON(cmd, result)
		},
	}
	cmd.Flags().IntVar(&rows, "rows", fakedata.DefaultRows, "number of rows")
	cmd.Flags().StringSliceVar(&fields, "fields", []string{"name", "email"}, "fields to generate")
	return cmd
}
