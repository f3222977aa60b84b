package slack

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

type CommandType string

const (
	CmdSetup       CommandType = "setup"
	CmdSet         CommandType = "set"
	CmdRemove      CommandType = "remove"
	CmdSetUser     CommandType = "setuser"
	CmdRemoveUser  CommandType = "removeuser"
	CmdList        CommandType = "list"
	CmdRefresh     CommandType = "refresh"
	CmdImport      CommandType = "import"
	CmdTestDate    CommandType = "testdate"
	CmdWished      CommandType = "wished"
	CmdClearWished CommandType = "clearwished"
	CmdHelp        CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
	// Body is the text after the subcommand with line breaks preserved
	Body string
}

var (
	userMention    = regexp.MustCompile(`^<@([UW][A-Z0-9]+)(?:\|[^>]*)?>$`)
	channelMention = regexp.MustCompile(`^<#(C[A-Z0-9]+)(?:\|[^>]*)?>$`)
	groupMention   = regexp.MustCompile(`^<!subteam\^(S[A-Z0-9]+)(?:\|[^>]*)?>$`)
	rawUserID      = regexp.MustCompile(`^[UW][A-Z0-9]{2,}$`)
	rawChannelID   = regexp.MustCompile(`^C[A-Z0-9]{2,}$`)
	rawGroupID     = regexp.MustCompile(`^S[A-Z0-9]{2,}$`)
)

var ErrUsage = errors.New("invalid arguments")

func ParseCommand(text string) (*Command, error) {
	trimmed := strings.TrimSpace(text)
	parts := strings.Fields(trimmed)
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw:  text,
		Body: strings.TrimSpace(strings.TrimPrefix(trimmed, parts[0])),
	}
	if len(parts) > 1 {
		cmd.Args = parts[1:]
	}

	switch strings.ToLower(parts[0]) {
	case "setup":
		cmd.Type = CmdSetup
	case "set":
		cmd.Type = CmdSet
	case "remove", "rm", "delete":
		cmd.Type = CmdRemove
	case "setuser":
		cmd.Type = CmdSetUser
	case "removeuser", "deleteuser":
		cmd.Type = CmdRemoveUser
	case "list", "ls":
		cmd.Type = CmdList
	case "refresh":
		cmd.Type = CmdRefresh
	case "import":
		cmd.Type = CmdImport
	case "testdate":
		cmd.Type = CmdTestDate
	case "wished", "showwished":
		cmd.Type = CmdWished
	case "clearwished":
		cmd.Type = CmdClearWished
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

// ParseUserID accepts an escaped mention or a raw user id
func ParseUserID(arg string) (string, bool) {
	if m := userMention.FindStringSubmatch(arg); m != nil {
		return m[1], true
	}
	if rawUserID.MatchString(arg) {
		return arg, true
	}
	return "", false
}

func ParseChannelID(arg string) (string, bool) {
	if m := channelMention.FindStringSubmatch(arg); m != nil {
		return m[1], true
	}
	if rawChannelID.MatchString(arg) {
		return arg, true
	}
	return "", false
}

func ParseGroupID(arg string) (string, bool) {
	if m := groupMention.FindStringSubmatch(arg); m != nil {
		return m[1], true
	}
	if rawGroupID.MatchString(arg) {
		return arg, true
	}
	return "", false
}

// ParseDayMonth reads "DD MM" or "DD/MM" from the start of args and returns
// the remaining args. The calendar check is left to the service.
func ParseDayMonth(args []string) (day, month int, rest []string, err error) {
	if len(args) > 0 && strings.ContainsAny(args[0], "/-.") {
		fields := strings.FieldsFunc(args[0], func(r rune) bool { return r == '/' || r == '-' || r == '.' })
		args = append(fields, args[1:]...)
	}

	if len(args) < 2 {
		return 0, 0, nil, ErrUsage
	}

	day, err = strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, nil, ErrUsage
	}
	month, err = strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, nil, ErrUsage
	}

	return day, month, args[2:], nil
}

type SetupArgs struct {
	ChannelID        string
	StatusGroupID    string
	ModeratorGroupID string
	CheckHour        int
	HourSet          bool
}

// ParseSetupArgs reads `[#channel] [@status-group] [@mod-group mod] [hour]`
func ParseSetupArgs(args []string) (*SetupArgs, error) {
	setup := &SetupArgs{}

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if id, ok := ParseChannelID(arg); ok {
			setup.ChannelID = id
			continue
		}

		if id, ok := ParseGroupID(arg); ok {
			if i+1 < len(args) && strings.EqualFold(args[i+1], "mod") {
				setup.ModeratorGroupID = id
				i++
				continue
			}
			setup.StatusGroupID = id
			continue
		}

		hour, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: unexpected %q", ErrUsage, arg)
		}
		setup.CheckHour = hour
		setup.HourSet = true
	}

	return setup, nil
}

type TestDateArgs struct {
	Date         time.Time
	ResetLedger  bool
	IgnoreWished bool
}

// ParseTestDateArgs reads `DD MM [YYYY] [reset] [force]`; the year defaults to now's
func ParseTestDateArgs(args []string, now time.Time) (*TestDateArgs, error) {
	day, month, rest, err := ParseDayMonth(args)
	if err != nil {
		return nil, err
	}

	parsed := &TestDateArgs{}
	year := now.Year()

	for _, arg := range rest {
		switch strings.ToLower(arg) {
		case "reset":
			parsed.ResetLedger = true
		case "force":
			parsed.IgnoreWished = true
		default:
			y, err := strconv.Atoi(arg)
			if err != nil || y < 1 {
				return nil, fmt.Errorf("%w: unexpected %q", ErrUsage, arg)
			}
			year = y
		}
	}

	date := time.Date(year, time.Month(month), day, now.Hour(), now.Minute(), 0, 0, now.Location())
	if month < 1 || month > 12 || date.Day() != day {
		return nil, fmt.Errorf("%w: %02d/%02d/%d is not a date", ErrUsage, day, month, year)
	}
	parsed.Date = date

	return parsed, nil
}

func GetHelpText() string {
	return `*Available Commands:*

*Setup:*
• ` + "`/birthday setup #channel [@status-group] [@mod-group mod] [hour]`" + ` - Configure the birthday channel, the status group and the check hour (0-23, default 9)

*Birthdays:*
• ` + "`/birthday set DD MM`" + ` - Set your birthday (ex: 04 07)
• ` + "`/birthday remove`" + ` - Delete your birthday
• ` + "`/birthday setuser @user DD MM`" + ` - Set a birthday for another member
• ` + "`/birthday removeuser @user`" + ` - Delete another member's birthday
• ` + "`/birthday import <lines>`" + ` - Import one ` + "`@user - DD/MM`" + ` per line

*Listing:*
• ` + "`/birthday list [page]`" + ` - Show upcoming birthdays
• ` + "`/birthday refresh`" + ` - Refresh the pinned birthday list

*Testing:*
• ` + "`/birthday testdate DD MM [YYYY] [reset] [force]`" + ` - Simulate the birthday check for a date
• ` + "`/birthday wished`" + ` - Show who was already wished
• ` + "`/birthday clearwished`" + ` - Forget who was wished`
}
