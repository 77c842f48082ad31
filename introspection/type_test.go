package introspection

import "testing"

func TestImport_LocalName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		imp  Import
		want string
	}{
		{
			name: "名前のないimportはパスの最後の要素",
			imp:  Import{Path: "github.com/0rca/buildergen/optional"},
			want: "optional",
		},
		{
			name: "別名を付けたimportは別名",
			imp:  Import{Name: "opt", Path: "github.com/0rca/buildergen/optional"},
			want: "opt",
		},
		{
			name: "メジャーバージョンのサフィックスは飛ばす",
			imp:  Import{Path: "example.com/optional/v2"},
			want: "optional",
		},
		{
			name: "gopkg.inのバージョンも飛ばす",
			imp:  Import{Path: "gopkg.in/optional.v3"},
			want: "optional",
		},
		{
			name: "識別子に使えない文字は置き換える",
			imp:  Import{Path: "example.com/go-option"},
			want: "go_option",
		},
		{
			name: "標準ライブラリ",
			imp:  Import{Path: "time"},
			want: "time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.imp.LocalName(); got != tt.want {
				t.Errorf("LocalName() = %q, want %q", got, tt.want)
			}
		})
	}
}
