package vos

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/rushsh/rush/third_party/realpath"
	"github.com/spf13/afero"
)

// FsOp is a textual description of the filesystem operation.
type FsOp = string

const (
	FsOpChtimes  FsOp = "chtimes"
	FsOpChmod    FsOp = "chmod"
	FsOpChown    FsOp = "chown"
	FsOpStat     FsOp = "stat"
	FsOpRename   FsOp = "rename"
	FsOpRemove   FsOp = "remove"
	FsOpOpen     FsOp = "open"
	FsOpMkdir    FsOp = "mkdir"
	FsOpCreate   FsOp = "create"
	FsOpLstat    FsOp = "lstat"
	FsOpReadlink FsOp = "readlink"
)

// FileMapper rewrites the name passed to a filesystem operation.
type FileMapper func(op FsOp, name string) (path string, err error)

// PathMappingFs maps all paths on a filesystem via callback to another path.
type PathMappingFs struct {
	BaseFs afero.Fs
	Mapper FileMapper
}

var _ afero.Lstater = (*PathMappingFs)(nil)
var _ afero.LinkReader = (*PathMappingFs)(nil)

// NewPathMappingFs wraps base so every name goes through mapper first.
func NewPathMappingFs(base afero.Fs, mapper FileMapper) *PathMappingFs {
	return &PathMappingFs{BaseFs: base, Mapper: mapper}
}

func (b *PathMappingFs) mapName(op FsOp, name string) (string, error) {
	mapped, err := b.Mapper(op, name)
	if err != nil {
		return "", &os.PathError{Op: op, Path: name, Err: err}
	}
	return mapped, nil
}

func (b *PathMappingFs) Name() string {
	return "PathMappingFs"
}

func (b *PathMappingFs) Chtimes(name string, atime, mtime time.Time) (err error) {
	if name, err = b.mapName(FsOpChtimes, name); err != nil {
		return err
	}
	return b.BaseFs.Chtimes(name, atime, mtime)
}

func (b *PathMappingFs) Chmod(name string, mode os.FileMode) (err error) {
	if name, err = b.mapName(FsOpChmod, name); err != nil {
		return err
	}
	return b.BaseFs.Chmod(name, mode)
}

func (b *PathMappingFs) Chown(name string, uid, gid int) (err error) {
	if name, err = b.mapName(FsOpChown, name); err != nil {
		return err
	}
	return b.BaseFs.Chown(name, uid, gid)
}

func (b *PathMappingFs) Stat(name string) (fi os.FileInfo, err error) {
	if name, err = b.mapName(FsOpStat, name); err != nil {
		return nil, err
	}
	return b.BaseFs.Stat(name)
}

func (b *PathMappingFs) Rename(oldname, newname string) (err error) {
	if oldname, err = b.mapName(FsOpRename, oldname); err != nil {
		return err
	}
	if newname, err = b.mapName(FsOpRename, newname); err != nil {
		return err
	}
	return b.BaseFs.Rename(oldname, newname)
}

func (b *PathMappingFs) RemoveAll(name string) (err error) {
	if name, err = b.mapName(FsOpRemove, name); err != nil {
		return err
	}
	return b.BaseFs.RemoveAll(name)
}

func (b *PathMappingFs) Remove(name string) (err error) {
	if name, err = b.mapName(FsOpRemove, name); err != nil {
		return err
	}
	return b.BaseFs.Remove(name)
}

func (b *PathMappingFs) OpenFile(name string, flag int, mode os.FileMode) (f afero.File, err error) {
	if name, err = b.mapName(FsOpOpen, name); err != nil {
		return nil, err
	}
	return b.BaseFs.OpenFile(name, flag, mode)
}

func (b *PathMappingFs) Open(name string) (f afero.File, err error) {
	if name, err = b.mapName(FsOpOpen, name); err != nil {
		return nil, err
	}
	return b.BaseFs.Open(name)
}

func (b *PathMappingFs) Mkdir(name string, mode os.FileMode) (err error) {
	if name, err = b.mapName(FsOpMkdir, name); err != nil {
		return err
	}
	return b.BaseFs.Mkdir(name, mode)
}

func (b *PathMappingFs) MkdirAll(name string, mode os.FileMode) (err error) {
	if name, err = b.mapName(FsOpMkdir, name); err != nil {
		return err
	}
	return b.BaseFs.MkdirAll(name, mode)
}

func (b *PathMappingFs) Create(name string) (f afero.File, err error) {
	if name, err = b.mapName(FsOpCreate, name); err != nil {
		return nil, err
	}
	return b.BaseFs.Create(name)
}

func (b *PathMappingFs) LstatIfPossible(name string) (os.FileInfo, bool, error) {
	name, err := b.mapName(FsOpLstat, name)
	if err != nil {
		return nil, false, err
	}
	return lstat(b.BaseFs, name)
}

func (b *PathMappingFs) ReadlinkIfPossible(name string) (string, error) {
	name, err := b.mapName(FsOpReadlink, name)
	if err != nil {
		return "", err
	}
	return readlink(b.BaseFs, name)
}

func lstat(base VFS, name string) (os.FileInfo, bool, error) {
	if lstater, ok := base.(afero.Lstater); ok {
		return lstater.LstatIfPossible(name)
	}
	fi, err := base.Stat(name)
	return fi, false, err
}

func readlink(base VFS, name string) (string, error) {
	if reader, ok := base.(afero.LinkReader); ok {
		return reader.ReadlinkIfPossible(name)
	}
	return "", &os.PathError{Op: FsOpReadlink, Path: name, Err: afero.ErrNoReadlink}
}

// realpathOs adapts a VFS and a working directory to realpath.OS.
type realpathOs struct {
	wd   string
	base VFS
}

var _ realpath.OS = (*realpathOs)(nil)

func (r *realpathOs) Getwd() (string, error) {
	return r.wd, nil
}

func (r *realpathOs) Lstat(name string) (fs.FileInfo, error) {
	fi, _, err := lstat(r.base, name)
	return fi, err
}

func (r *realpathOs) Readlink(name string) (string, error) {
	link, err := readlink(r.base, name)
	if errors.Is(err, afero.ErrNoReadlink) {
		return "", &os.PathError{Op: FsOpReadlink, Path: name, Err: errors.New("not a link")}
	}
	return link, err
}
