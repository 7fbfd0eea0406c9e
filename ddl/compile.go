package ddl

import (
	"fmt"
	"strings"

	"github.com/simon-lentz/refschema/command"
	"github.com/simon-lentz/refschema/location"
	"github.com/simon-lentz/refschema/objname"
	"github.com/simon-lentz/refschema/referencing"
	"github.com/simon-lentz/refschema/schemaobj"
	"github.com/simon-lentz/refschema/store"
)

// FieldTranslator converts a Node's raw, JSON-decoded Fields map into
// the typed field values a concrete domain package expects (e.g.
// turning a "targetType" string into an objname.Name, or a "params"
// object into a domain.Params). Compile calls it once per node, after
// decoding but before building the engine request; a nil translator
// passes Fields through unchanged.
type FieldTranslator func(kind schemaobj.ClassKind, raw map[string]any) (map[string]any, error)

// Compile walks a Node tree depth-first and applies each node to s
// through eng, in declaration order, under a single declarative,
// recursion-enabled CommandContext. Nested Subcommands push and pop
// referrer frames as Compile recurses, so every inner node executes
// with its full referrer chain on the stack.
func Compile(eng *referencing.Engine, s *store.Schema, root *Node, translate FieldTranslator, opts ...Option) (*store.Schema, error) {
	cfg := defaultConfig()
	applyOptions(cfg, opts)

	ctx := command.NewCommandContext(command.Declarative(true), command.EnableRecursion(true))
	return compileNode(eng, s, ctx, root, translate, cfg)
}

func compileNode(eng *referencing.Engine, s *store.Schema, ctx *command.CommandContext, node *Node, translate FieldTranslator, cfg *config) (*store.Schema, error) {
	kind := schemaobj.ClassKind(node.Kind)

	fields, err := translateFields(kind, node.Fields, translate)
	if err != nil {
		return nil, fmt.Errorf("node %s %s: %w", node.Op, node.Name, err)
	}

	var (
		next     *store.Schema
		childRef objname.Name
		err2     error
	)

	switch node.Op {
	case OpCreate:
		bases, berr := parseNames(node.Extending)
		if berr != nil {
			return nil, berr
		}
		req := referencing.CreateRefRequest{
			Kind:               kind,
			ShortName:          node.Name,
			Quals:              node.Quals,
			Doc:                node.Doc,
			Abstract:           node.Abstract,
			Final:              node.Final,
			ExplicitBases:      bases,
			DeclaredOverloaded: node.Overloaded,
			Fields:             fields,
			Span:               nodeSpan(cfg.source, node),
		}
		cfg.logger.Debug("compile: create", "kind", node.Kind, "name", node.Name)
		next, err2 = eng.CreateRef(s, ctx, req)
		if err2 == nil {
			childRef = eng.ClassnameFromAST(ctx, kind, node.Name, node.Quals...)
		}

	case OpAlter:
		name, perr := parseName(node.Name)
		if perr != nil {
			return nil, perr
		}
		req := referencing.AlterRefRequest{
			Name:                  name,
			SetDoc:                node.SetDoc,
			SetAbstract:           node.SetAbstract,
			SetFinal:              node.SetFinal,
			SetDeclaredOverloaded: node.SetOverloaded,
			Fields:                fields,
			ExplicitOwnership:     node.ExplicitOwnership,
		}
		cfg.logger.Debug("compile: alter", "kind", node.Kind, "name", node.Name)
		next, err2 = eng.AlterRef(s, ctx, req)
		childRef = name

	case OpDelete:
		name, perr := parseName(node.Name)
		if perr != nil {
			return nil, perr
		}
		cfg.logger.Debug("compile: delete", "kind", node.Kind, "name", node.Name)
		next, err2 = eng.DeleteRef(s, ctx, name)

	case OpRename:
		name, perr := parseName(node.Name)
		if perr != nil {
			return nil, perr
		}
		cfg.logger.Debug("compile: rename", "kind", node.Kind, "name", node.Name, "to", node.NewShortName)
		next, err2 = eng.RenameRef(s, ctx, referencing.RenameRefRequest{Name: name, NewShortName: node.NewShortName})
		if err2 == nil {
			childRef = objname.NewName(name.Module(), node.NewShortName)
			if old, ok := s.Get(name); ok && !old.Referrer().IsZero() {
				childRef = objname.Specialized(node.NewShortName, old.Referrer(), objname.QualsFromFullName(name)...)
			}
		}

	case OpRebase:
		name, perr := parseName(node.Name)
		if perr != nil {
			return nil, perr
		}
		added, aerr := parseNames(node.RebaseAdded)
		if aerr != nil {
			return nil, aerr
		}
		removed, rerr := parseNames(node.RebaseRemoved)
		if rerr != nil {
			return nil, rerr
		}
		cfg.logger.Debug("compile: rebase", "kind", node.Kind, "name", node.Name)
		next, err2 = eng.RebaseRef(s, ctx, referencing.RebaseRefRequest{
			Name: name, AddedBases: added, RemovedBases: removed, Implicit: node.RebaseImplicit,
		})
		childRef = name

	case OpAlterOwned:
		name, perr := parseName(node.Name)
		if perr != nil {
			return nil, perr
		}
		cfg.logger.Debug("compile: alter_owned", "kind", node.Kind, "name", node.Name, "owned", node.Owned)
		next, err2 = eng.AlterOwnedRef(s, ctx, name, node.Owned)
		childRef = name

	default:
		return nil, fmt.Errorf("unknown ddl op %q", node.Op)
	}

	if err2 != nil {
		return nil, err2
	}

	if len(node.Subcommands) == 0 {
		return next, nil
	}

	ctx.Push(kind, childRef)
	defer ctx.Pop()

	for _, sub := range node.Subcommands {
		var serr error
		next, serr = compileNode(eng, next, ctx, sub, translate, cfg)
		if serr != nil {
			return nil, serr
		}
	}
	return next, nil
}

func translateFields(kind schemaobj.ClassKind, raw map[string]any, translate FieldTranslator) (map[string]any, error) {
	if raw == nil {
		return nil, nil
	}
	if translate == nil {
		return raw, nil
	}
	return translate(kind, raw)
}

// nodeSpan builds the source span a newly created ref should carry
// from node's recorded line/column, or the zero span ("no location")
// if the AST producer left them unset.
func nodeSpan(source location.SourceID, node *Node) location.Span {
	if node.Line <= 0 || node.Column <= 0 {
		return location.Span{}
	}
	return location.Point(source, node.Line, node.Column)
}

// parseName parses a "module::local" AST name into an objname.Name.
func parseName(s string) (objname.Name, error) {
	mod, local, ok := strings.Cut(s, "::")
	if !ok {
		return objname.Name{}, fmt.Errorf("ddl name %q is not fully qualified (expected module::local)", s)
	}
	return objname.NewName(mod, local), nil
}

func parseNames(ss []string) ([]objname.Name, error) {
	if len(ss) == 0 {
		return nil, nil
	}
	out := make([]objname.Name, len(ss))
	for i, s := range ss {
		n, err := parseName(s)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}
