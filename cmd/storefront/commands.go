package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"sort"

	authdomain "github.com/dwikikusuma/storefront/internal/auth/domain"
	qrcode "github.com/skip2/go-qrcode"
)

type command struct {
	usage    string
	fallback string
	run      func(ctx context.Context, a *app, args []string) error
}

func commandTable() map[string]command {
	return map[string]command{
		"login":           {"login [-as customer|vendor|admin] -email E -password P", "Login failed. Please check your credentials.", cmdLogin},
		"verify-2fa":      {"verify-2fa -code CODE", "Verification failed.", cmdVerify2FA},
		"logout":          {"logout", "Logout failed.", cmdLogout},
		"whoami":          {"whoami", "Could not read the session.", cmdWhoami},
		"signup":          {"signup -name N -email E -password P [-phone P] [-address A]", "Signup failed.", cmdSignup},
		"forgot-password": {"forgot-password -email E", "Could not request a password reset.", cmdForgotPassword},
		"reset-password":  {"reset-password -token T -password P -confirm P", "Could not reset the password.", cmdResetPassword},
		"2fa":             {"2fa setup | enable -code C -secret S | disable -code C", "Two-factor update failed.", cmd2FA},
		"items":           {"items [-vendor ID | -category NAME | -search WORD | -under PRICE]", "Failed to load items.", cmdItems},
		"vendors":         {"vendors [-search WORD | -status OPEN|BUSY|CLOSED]", "Failed to load vendors.", cmdVendors},
		"vendor":          {"vendor <vendor-id>", "Failed to load the vendor.", cmdVendor},
		"rate":            {"rate <vendor-id> <1-5>", "Failed to rate the vendor.", cmdRate},
		"categories":      {"categories", "Failed to load categories.", cmdCategories},
		"menu":            {"menu show | add -name N -price P [flags] | update <item-id> -name N -price P [flags] | delete <item-id>", "Failed to update the menu.", cmdMenu},
		"cart":            {"cart show | add <item-id> [-qty N] | remove <item-id> [-qty N] | set <item-id> <qty> | delete <item-id>", "Failed to update cart.", cmdCart},
		"quote":           {"quote", "Failed to price the cart.", cmdQuote},
		"checkout":        {"checkout -address A [-method cash|mobile_money|card]", "Checkout failed. Please try again.", cmdCheckout},
		"orders":          {"orders", "Failed to load orders.", cmdOrders},
		"order":           {"order show <order-id> | cancel <order-id>", "Failed to update the order.", cmdOrder},
		"payment":         {"payment show|refund|cancel <payment-id>", "Failed to update the payment.", cmdPayment},
		"admin":           {"admin dashboard [-limit N] [-period day|week|month|year] | delete-cart <cart-id>", "Admin action failed.", cmdAdmin},
	}
}

func (a *app) exec(ctx context.Context, args []string) int {
	table := commandTable()
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		a.help(table)
		if len(args) == 0 {
			return exitUsage
		}
		return exitOK
	}

	cmd, ok := table[args[0]]
	if !ok {
		fmt.Fprintf(a.err, "unknown command %q\n", args[0])
		a.help(table)
		return exitUsage
	}

	if err := a.auth.Hydrate(ctx); err != nil {
		a.log.Error("hydrate session", slog.Any("err", err))
		fmt.Fprintln(a.err, "Could not load the saved session.")
		return exitFailure
	}

	if err := cmd.run(ctx, a, args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			err = usage(cmd.usage)
		}
		a.log.Debug("command failed", slog.String("command", args[0]), slog.Any("err", err))
		msg, code := notification(err, cmd.fallback)
		fmt.Fprintln(a.err, msg)
		return code
	}
	return exitOK
}

func (a *app) help(table map[string]command) {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.err, "usage: storefront <command> [flags]")
	fmt.Fprintln(a.err)
	for _, name := range names {
		fmt.Fprintf(a.err, "  %s\n", table[name].usage)
	}
}

// flags returns a flag set that reports problems as usage errors.
func (a *app) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.err)
	return fs
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() > 0 {
		return errUsage
	}
	return nil
}

func cmdLogin(ctx context.Context, a *app, args []string) error {
	fs := a.flags("login")
	as := fs.String("as", "customer", "account type: customer, vendor or admin")
	email := fs.String("email", "", "email, or username for admin")
	password := fs.String("password", "", "password")
	if err := parse(fs, args); err != nil {
		return err
	}

	switch *as {
	case "customer":
		step, err := a.auth.LoginCustomer(ctx, *email, *password)
		if err != nil {
			return err
		}
		if step == authdomain.StepTwoFactor {
			fmt.Fprintln(a.out, "Two-factor authentication is on for this account.")
			fmt.Fprintln(a.out, "Enter the code from your authenticator: storefront verify-2fa -code <code>")
			return nil
		}
	case "vendor":
		if err := a.auth.LoginVendor(ctx, *email, *password); err != nil {
			return err
		}
	case "admin":
		if err := a.auth.LoginAdmin(ctx, *email, *password); err != nil {
			return err
		}
	default:
		return errUsage
	}
	a.printSession(a.auth.Current())
	return nil
}

func cmdVerify2FA(ctx context.Context, a *app, args []string) error {
	fs := a.flags("verify-2fa")
	code := fs.String("code", "", "6-digit code")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := a.auth.VerifyTwoFactor(ctx, *code); err != nil {
		return err
	}
	a.printSession(a.auth.Current())
	return nil
}

func cmdLogout(ctx context.Context, a *app, args []string) error {
	if len(args) > 0 {
		return errUsage
	}
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func cmdWhoami(_ context.Context, a *app, args []string) error {
	if len(args) > 0 {
		return errUsage
	}
	a.printSession(a.auth.Current())
	return nil
}

func cmdSignup(ctx context.Context, a *app, args []string) error {
	fs := a.flags("signup")
	var req authdomain.SignupRequest
	fs.StringVar(&req.Name, "name", "", "full name")
	fs.StringVar(&req.Email, "email", "", "email")
	fs.StringVar(&req.Password, "password", "", "password, at least 6 characters")
	fs.StringVar(&req.Phone, "phone", "", "phone number")
	fs.StringVar(&req.Address, "address", "", "default delivery address")
	if err := parse(fs, args); err != nil {
		return err
	}

	u, err := a.auth.Signup(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Account created for %s. You can now log in.\n", u.Email)
	return nil
}

func cmdForgotPassword(ctx context.Context, a *app, args []string) error {
	fs := a.flags("forgot-password")
	email := fs.String("email", "", "account email")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := a.auth.ForgotPassword(ctx, *email); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "If that email is registered, a reset code is on its way.")
	return nil
}

func cmdResetPassword(ctx context.Context, a *app, args []string) error {
	fs := a.flags("reset-password")
	token := fs.String("token", "", "reset code from the email")
	password := fs.String("password", "", "new password")
	confirm := fs.String("confirm", "", "new password again")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := a.auth.ResetPassword(ctx, *token, *password, *confirm); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Password updated. You can now log in.")
	return nil
}

func cmd2FA(ctx context.Context, a *app, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	fs := a.flags("2fa " + args[0])

	switch args[0] {
	case "setup":
		if err := parse(fs, args[1:]); err != nil {
			return err
		}
		setup, err := a.auth.SetupTwoFactor(ctx)
		if err != nil {
			return err
		}
		content := setup.OTPAuthURL
		if content == "" {
			content = setup.Secret
		}
		if qr, err := qrcode.New(content, qrcode.Medium); err == nil {
			fmt.Fprint(a.out, qr.ToSmallString(false))
		} else {
			a.log.Warn("render qr code", slog.Any("err", err))
		}
		fmt.Fprintf(a.out, "Secret: %s\n", setup.Secret)
		fmt.Fprintf(a.out, "Scan the code, then run: storefront 2fa enable -secret %s -code <code>\n", setup.Secret)
		return nil

	case "enable":
		code := fs.String("code", "", "code from the authenticator")
		secret := fs.String("secret", "", "secret shown by 2fa setup")
		if err := parse(fs, args[1:]); err != nil {
			return err
		}
		if err := a.auth.EnableTwoFactor(ctx, *code, *secret); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Two-factor authentication enabled.")
		return nil

	case "disable":
		code := fs.String("code", "", "code from the authenticator")
		if err := parse(fs, args[1:]); err != nil {
			return err
		}
		if err := a.auth.DisableTwoFactor(ctx, *code); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Two-factor authentication disabled.")
		return nil
	}
	return errUsage
}
