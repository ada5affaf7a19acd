package server

// indexHTML is the embedded browser client: a canvas fed by PNG frames
// from the websocket, sending held-key state on every change.
const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>corridor9</title>
<style>
  body { margin: 0; background: #111; display: flex; align-items: center;
         justify-content: center; height: 100vh; }
  canvas { image-rendering: pixelated; width: 90vmin; }
  #hint { position: fixed; bottom: 8px; color: #888;
          font: 14px monospace; }
</style>
</head>
<body>
<canvas id="view"></canvas>
<div id="hint">WASD / arrows to move</div>
<script>
const canvas = document.getElementById('view');
const ctx = canvas.getContext('2d');
const proto = location.protocol === 'https:' ? 'wss:' : 'ws:';
const ws = new WebSocket(proto + '//' + location.host + '/ws');
ws.binaryType = 'blob';

ws.onmessage = async (ev) => {
  const bmp = await createImageBitmap(ev.data);
  canvas.width = bmp.width;
  canvas.height = bmp.height;
  ctx.drawImage(bmp, 0, 0);
  bmp.close();
};

const held = {rotateLeft: false, rotateRight: false,
              moveForward: false, moveBackward: false};
const binds = {
  'a': 'rotateLeft', 'ArrowLeft': 'rotateLeft',
  'd': 'rotateRight', 'ArrowRight': 'rotateRight',
  'w': 'moveForward', 'ArrowUp': 'moveForward',
  's': 'moveBackward', 'ArrowDown': 'moveBackward',
};

function setKey(ev, down) {
  const intent = binds[ev.key.length === 1 ? ev.key.toLowerCase() : ev.key];
  if (!intent || held[intent] === down) return;
  held[intent] = down;
  if (ws.readyState === WebSocket.OPEN) ws.send(JSON.stringify(held));
  ev.preventDefault();
}
window.addEventListener('keydown', (ev) => setKey(ev, true));
window.addEventListener('keyup', (ev) => setKey(ev, false));
</script>
</body>
</html>
`
