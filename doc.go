/*
Package args implements a minimal command-line argument lookup
facility. Rather than declaring flags up front, callers hand the
package the raw argument vector once, then query it with typed
accessors whenever a value is needed. Accessors never fail: whatever
is malformed or missing silently yields the type's default value.

# Usage

	import "github.com/mrvladus/args"

	func main() {
	    args.ParseCommandLine()

	    showHelp := args.Bool("-h|--help|help")
	    port := args.Int("-p|--port")
	    ratio := args.Float("--ratio")
	    name := args.String("-n|--name")
	    ...
	}

Every accessor also exists as a method on a Store, created with
NewStore from an arbitrary argument vector. Index 0 of the vector is
taken to be the program name and is never matched against.

# Alias Specs

Each accessor takes a single spec string naming the flag and any
number of aliases, separated by "|", for example "-h|--help|help".
Aliases are tried in the order listed; for each alias the stored
arguments are scanned front to back, and every match overwrites the
running result. The net policy is therefore: the last alias listed,
at its last matching argument position, wins. Empty alias tokens
(from specs like "a||b") never match anything.

# Value Forms

Two forms are recognized for a flag "f":

	f value     the value is the next argument ("separated" form)
	f=value     the value follows the first "=" ("fused" form)

The fused form matches any argument that has f as a prefix and
contains a "=" anywhere, so "--port=8080" matches the flag "--port".

# Boolean Values

Bool recognizes the truthy tokens "true", "on", "yes", "y", "1" and
the falsy tokens "false", "off", "no", "n", "0". In the separated
form the token following the flag is compared case-insensitively; a
follower that is neither truthy nor falsy, or a flag with no follower
at all, reads as true (presence alone implies true). In the fused
form the comparison is case-sensitive, so "--x=TRUE" is not
recognized and leaves the result unchanged. This asymmetry between
the two forms is part of the compatibility contract.

# Numeric Values

Int and Float parse in the manner of C's atoi and atof: leading
whitespace is skipped, an optional sign and the longest valid numeric
prefix are consumed, and anything that yields no digits at all reads
as 0. In the separated form the follower is only consumed when its
first character is an ASCII digit, so "--port -5" does NOT capture
the -5; the fused form has no such restriction, and "--port=-5"
works.

# String Values and Quoting

String takes the separated follower verbatim, with no restriction on
its first character. In the fused form, a value beginning with a
double quote extends to the next double quote or to the end of the
argument, whichever comes first:

	--name="John Smith"    yields  John Smith

Extracting such a quoted value truncates the stored argument at the
closing quote, so later queries against the same argument see the
truncated text. Because of this mutation, String and LookupString are
not safe for concurrent use; all other accessors only read the
snapshot.

# Defaults and Missing Values

Bool defaults to false, Int to 0, Float to 0.0, and String to the
sentinel NoValue. No accessor ever reports an error; a default result
is indistinguishable from the value genuinely not being supplied. The
Lookup variants (LookupBool, LookupInt, LookupFloat, LookupString)
close that gap: they return the same value plus a boolean reporting
whether any match actually captured it.
*/
package args
