package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"os"
)

type longOpt struct {
	name   string
	hasArg bool
	apply  func(*Options, string) error
}

type shortOpt struct {
	ch     byte
	hasArg bool
	apply  func(*Options, string) error
}

func parseUint16(arg string) (int, error) {
	v, err := strconv.ParseUint(arg, 10, 16)
	if err != nil {
		return 0, &ArgumentError{Reason: fmt.Sprintf("invalid number: '%s'", arg)}
	}
	return int(v), nil
}

// longOpts must stay sorted by name: lookupLongOpt relies on it for both the
// binary search and the ambiguity check against the following entry.
var longOpts = []longOpt{
	{"after-context", true, func(o *Options, a string) error {
		n, err := parseUint16(a)
		if err != nil {
			return err
		}
		o.AfterContext = n
		return nil
	}},
	{"before-context", true, func(o *Options, a string) error {
		n, err := parseUint16(a)
		if err != nil {
			return err
		}
		o.BeforeContext = n
		return nil
	}},
	{"context", true, func(o *Options, a string) error {
		n, err := parseUint16(a)
		if err != nil {
			return err
		}
		o.AfterContext = n
		o.BeforeContext = n
		return nil
	}},
	{"count", false, func(o *Options, _ string) error {
		o.CountOnly = true
		return nil
	}},
	{"dedupe-identical", false, func(o *Options, _ string) error {
		o.DedupeIdentical = true
		return nil
	}},
	{"files-with-matches", false, func(o *Options, _ string) error {
		o.FilesWithMatches = true
		return nil
	}},
	{"help", false, func(o *Options, _ string) error {
		o.Help = true
		return nil
	}},
	{"literal", false, func(o *Options, _ string) error {
		o.Literal = true
		return nil
	}},
	{"long-lines", false, func(o *Options, _ string) error {
		o.LongLines = true
		return nil
	}},
	{"multiline", false, func(o *Options, _ string) error {
		o.Multiline = true
		return nil
	}},
	{"version", false, func(o *Options, _ string) error {
		o.Version = true
		return nil
	}},
}

var shortOpts = []shortOpt{
	{'A', true, longOpts[0].apply},
	{'B', true, longOpts[1].apply},
	{'C', true, longOpts[2].apply},
	{'c', false, longOpts[3].apply},
	{'Q', false, longOpts[7].apply},
	{'l', false, longOpts[5].apply},
	{'h', false, longOpts[6].apply},
}

// lookupLongOpt finds the unique long option whose name has opt as a prefix,
// mirroring a binary search over a sorted table plus a look-ahead ambiguity
// check against the immediately following entry.
func lookupLongOpt(opt string) (longOpt, error) {
	lo, hi := 0, len(longOpts)
	for lo < hi {
		mid := (lo + hi) / 2
		if longOpts[mid].name < opt {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(longOpts) && strings.HasPrefix(longOpts[lo].name, opt) {
		if lo+1 < len(longOpts) && strings.HasPrefix(longOpts[lo+1].name, opt) {
			return longOpt{}, &ArgumentError{Reason: fmt.Sprintf("ambiguous option --%s", opt)}
		}
		return longOpts[lo], nil
	}
	return longOpt{}, &ArgumentError{Reason: fmt.Sprintf("unrecognized option --%s", opt)}
}

func lookupShortOpt(ch byte) (shortOpt, error) {
	for _, so := range shortOpts {
		if so.ch == ch {
			return so, nil
		}
	}
	return shortOpt{}, &ArgumentError{Reason: fmt.Sprintf("invalid option -%c", ch)}
}

// swapRanges exchanges the n elements starting at a with the n elements
// starting at b.
func swapRanges(argv []string, a, b, n int) {
	for i := 0; i < n; i++ {
		argv[a+i], argv[b+i] = argv[b+i], argv[a+i]
	}
}

// swapPortions rotates the option/non-option regions of argv so that the
// non-option run [firstNonopt, lastNonopt) ends up immediately before
// optind, implementing GNU-style argument permutation.
func swapPortions(argv []string, firstNonopt, lastNonopt *int, optind int) {
	bottom := *firstNonopt
	middle := *lastNonopt
	top := optind

	for top > middle && middle > bottom {
		if top-middle > middle-bottom {
			swapRanges(argv, bottom, top-(middle-bottom), middle-bottom)
			top -= middle - bottom
		} else {
			swapRanges(argv, bottom, middle, top-middle)
			bottom += top - middle
		}
	}
	*firstNonopt += optind - *lastNonopt
	*lastNonopt = optind
}

// Parse parses argv (including argv[0], the program name) into Options.
// argv is permuted in place, matching the reference implementation.
func Parse(argv []string) (*Options, error) {
	opts := &Options{StdoutIsTTY: isatty.IsTerminal(os.Stdout.Fd())}
	n := len(argv)
	optind, firstNonopt, lastNonopt := 1, 1, 1

	for {
		if firstNonopt != lastNonopt && lastNonopt != optind {
			swapPortions(argv, &firstNonopt, &lastNonopt, optind)
		} else if lastNonopt != optind {
			firstNonopt = optind
		}

		for optind < n && !strings.HasPrefix(argv[optind], "-") {
			optind++
		}
		lastNonopt = optind

		if optind != n && argv[optind] == "--" {
			optind++
			if firstNonopt != lastNonopt && lastNonopt != optind {
				swapPortions(argv, &firstNonopt, &lastNonopt, optind)
			} else if firstNonopt == lastNonopt {
				firstNonopt = optind
			}
			lastNonopt = n
			optind = n
		}

		if optind == n {
			if firstNonopt != lastNonopt {
				optind = firstNonopt
			}
			break
		}

		opt := argv[optind][1:]
		if strings.HasPrefix(opt, "-") {
			optind++
			opt = opt[1:]
			eq := strings.IndexByte(opt, '=')
			name := opt
			var arg string
			hasEq := eq >= 0
			if hasEq {
				name = opt[:eq]
				arg = opt[eq+1:]
			}
			lopt, err := lookupLongOpt(name)
			if err != nil {
				return nil, err
			}
			if !lopt.hasArg {
				if hasEq {
					return nil, &ArgumentError{Reason: fmt.Sprintf("--%s takes no argument", lopt.name)}
				}
				if err := lopt.apply(opts, ""); err != nil {
					return nil, err
				}
			} else {
				if !hasEq {
					if optind < n {
						arg = argv[optind]
						optind++
					} else {
						return nil, &ArgumentError{Reason: fmt.Sprintf("--%s requires argument", lopt.name)}
					}
				}
				if err := lopt.apply(opts, arg); err != nil {
					return nil, err
				}
			}
			continue
		}

		for len(opt) > 0 {
			c := opt[0]
			so, err := lookupShortOpt(c)
			if err != nil {
				return nil, err
			}
			opt = opt[1:]
			if len(opt) == 0 {
				optind++
			}
			if !so.hasArg {
				if err := so.apply(opts, ""); err != nil {
					return nil, err
				}
				continue
			}
			var arg string
			if len(opt) > 0 {
				arg = opt
				opt = ""
				optind++
			} else if optind == n {
				return nil, &ArgumentError{Reason: fmt.Sprintf("-%c requires argument", c)}
			} else {
				arg = argv[optind]
				optind++
			}
			if err := so.apply(opts, arg); err != nil {
				return nil, err
			}
		}
	}

	if opts.Help || opts.Version {
		return opts, nil
	}

	if optind == n {
		return nil, &ArgumentError{Reason: "missing pattern"}
	}
	opts.Pattern = argv[optind]
	optind++
	if optind < n {
		opts.Paths = append([]string{}, argv[optind:]...)
	}

	if opts.CountOnly || opts.FilesWithMatches {
		opts.BeforeContext = 0
		opts.AfterContext = 0
	}

	return opts, nil
}
