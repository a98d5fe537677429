package diff

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePatch = `diff --git a/library/std/lib.rs b/library/std/lib.rs
index 1111111..2222222 100644
--- a/library/std/lib.rs
+++ b/library/std/lib.rs
@@ -1,1 +1,1 @@
-old
+new
diff --git a/src/tools/tidy/src/new.rs b/src/tools/tidy/src/new.rs
new file mode 100644
index 0000000..3333333
--- /dev/null
+++ b/src/tools/tidy/src/new.rs
@@ -0,0 +1,1 @@
+fn main() {}
diff --git a/tests/ui/old.rs b/tests/ui/old.rs
deleted file mode 100644
index 4444444..0000000
--- a/tests/ui/old.rs
+++ /dev/null
@@ -1,1 +0,0 @@
-fn main() {}
`

func TestPatchChangedFiles(t *testing.T) {
	p := Patch{Reader: strings.NewReader(samplePatch)}
	got, err := p.ChangedFiles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{
		"/library/std/lib.rs",
		"/src/tools/tidy/src/new.rs",
		"/tests/ui/old.rs",
	}, got)
}

func TestPatchWithoutGitPrefixes(t *testing.T) {
	patch := `--- library/core/src/num/f128.rs
+++ library/core/src/num/f128.rs
@@ -1,1 +1,1 @@
-a
+b
`
	got, err := Patch{Reader: strings.NewReader(patch)}.ChangedFiles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"/library/core/src/num/f128.rs"}, got)
}

func TestPatchEmpty(t *testing.T) {
	got, err := Patch{Reader: strings.NewReader("")}.ChangedFiles(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPatchCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Patch{Reader: strings.NewReader(samplePatch)}.ChangedFiles(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
