package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/imports"

	"xroad/internal/schema"
)

// reserved are hand-written exported names of the object package.
var reserved = []string{
	"BrokenRefError", "Coerce", "DecodeFieldValue", "DictID", "EncodeFieldValue", "Factory",
	"Field", "NewFactory", "NewField", "None", "Opt", "Owned", "Ownership", "OwnershipBorrowed",
	"OwnershipOwned", "Patch", "Record", "SetTypedValue", "Some", "TypedValue", "Walk",
}

// initialisms are field name words written in upper case.
var initialisms = map[string]string{
	"id":   "ID",
	"isin": "ISIN",
	"cfi":  "CFI",
	"uuid": "UUID",
	"bb":   "BB",
	"oi":   "OI",
	"pnl":  "PnL",
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "objgen: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	kindsFlag := flag.String("kinds", "", "comma separated record kinds (default: every registered kind)")
	outputFlag := flag.String("output", "fields_gen.go", "output file name")
	flag.Parse()

	var kinds []schema.RecordKind
	if strings.TrimSpace(*kindsFlag) == "" {
		kinds = schema.Default().Kinds()
	}
	for _, name := range strings.Split(*kindsFlag, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		kind, ok := schema.ParseKind(name)
		if !ok {
			return fmt.Errorf("unknown record kind: %s", name)
		}
		kinds = append(kinds, kind)
	}
	if len(kinds) == 0 {
		return errors.New("no record kinds given")
	}

	dir, err := os.Getwd()
	if err != nil {
		return err
	}

	pkgs, err := packages.Load(&packages.Config{Mode: packages.NeedName, Dir: dir}, ".")
	if err != nil {
		return err
	}
	if len(pkgs) == 0 || pkgs[0].Name == "" {
		return errors.New("no packages found")
	}

	outPath := filepath.Join(dir, filepath.Base(*outputFlag))
	out, err := render(pkgs[0].Name, outPath, schema.Default(), kinds)
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, out, 0o644)
}

// render writes one var block of descriptors per kind. Kinds without fields are skipped.
// Descriptor names must not repeat or shadow the names in reserved.
func render(pkgName, outPath string, reg *schema.Registry, kinds []schema.RecordKind) ([]byte, error) {
	withFields := make([]*schema.Schema, 0, len(kinds))
	for _, kind := range kinds {
		if s := reg.MustSchema(kind); len(s.Fields) != 0 {
			withFields = append(withFields, s)
		}
	}

	taken := make(map[string]string, len(reserved))
	for _, name := range reserved {
		taken[name] = "package " + pkgName
	}

	var buf bytes.Buffer
	buf.WriteString("// Code generated by objgen; DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkgName)
	buf.WriteString("import (\n\t\"xroad/internal/model/enum\"\n\t\"xroad/internal/schema\"\n)\n\n")

	for _, s := range withFields {
		fmt.Fprintf(&buf, "// %s fields\n", s.Name)
		buf.WriteString("var (\n")
		for _, f := range s.Fields {
			name := camel(s.Name, nil) + camel(f.Name, initialisms)
			if owner, ok := taken[name]; ok {
				return nil, fmt.Errorf("descriptor %s of %s.%s clashes with %s", name, s.Name, f.Name, owner)
			}
			taken[name] = s.Name + "." + f.Name
			fmt.Fprintf(&buf, "\t%s = NewField[%s](schema.Kind%s, %q)\n",
				name, goType(f), camel(s.Name, nil), f.Name)
		}
		buf.WriteString(")\n\n")
	}

	buf.WriteString("var generatedFields = map[schema.RecordKind][]string{\n")
	for _, s := range withFields {
		fmt.Fprintf(&buf, "\tschema.Kind%s: {\n", camel(s.Name, nil))
		for _, f := range s.Fields {
			fmt.Fprintf(&buf, "\t\t%q,\n", f.Name)
		}
		buf.WriteString("\t},\n")
	}
	buf.WriteString("}\n")

	return imports.Process(outPath, buf.Bytes(), &imports.Options{Comments: true, TabIndent: true, TabWidth: 8})
}

func goType(f schema.FieldSpec) string {
	switch f.Type {
	case schema.TypeInt8:
		return "int8"
	case schema.TypeInt16:
		return "int16"
	case schema.TypeInt32:
		return "int32"
	case schema.TypeInt64:
		return "int64"
	case schema.TypeUint8:
		return "uint8"
	case schema.TypeUint16:
		return "uint16"
	case schema.TypeUint32:
		return "uint32"
	case schema.TypeUint64:
		return "uint64"
	case schema.TypeDouble:
		return "float64"
	case schema.TypeString:
		return "string"
	case schema.TypeBinary:
		return "[]byte"
	case schema.TypeEnum:
		return "enum." + camel(f.Enum, nil)
	case schema.TypeRef:
		return "schema.ObjectRef"
	}
	return "any"
}

func camel(name string, upper map[string]string) string {
	var sb strings.Builder
	for _, word := range strings.Split(name, "_") {
		if word == "" {
			continue
		}
		if w, ok := upper[word]; ok {
			sb.WriteString(w)
			continue
		}
		sb.WriteString(strings.ToUpper(word[:1]))
		sb.WriteString(word[1:])
	}
	return sb.String()
}
